package ingest

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/model"
)

// ParseCSV reads a header row followed by one lead per row. Quoted fields may
// contain commas. Rows may be shorter or longer than the header.
func ParseCSV(ctx context.Context, r io.Reader) ([]model.Lead, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("ingest: csv is empty")
	}
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv header")
	}
	cols := newColumnIndex(header)

	leads := make([]model.Lead, 0)
	for i := 0; ; i++ {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "ingest: csv context cancelled")
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: read csv row %d", i+1)
		}
		leads = append(leads, cols.lead(row, i))
	}
	return leads, nil
}
