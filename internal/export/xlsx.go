package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leadrank/internal/model"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Leads"

// WriteXLSX writes leads to a single-sheet workbook using the CSV columns.
func WriteXLSX(w io.Writer, leads []model.Lead) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	addRow(sheet, Columns)
	for _, l := range leads {
		addRow(sheet, buildRow(l))
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write xlsx")
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells []string) {
	row := sheet.AddRow()
	for _, v := range cells {
		row.AddCell().SetString(v)
	}
}
