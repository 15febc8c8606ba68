package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func createTestXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadFile_CSV(t *testing.T) {
	path := writeTestFile(t, "leads.CSV", sampleCSV)

	leads, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, leads, 2)
}

func TestReadFile_JSON(t *testing.T) {
	path := writeTestFile(t, "leads.json", `[{"id":"1","company_name":"Acme"}]`)

	leads, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Acme", leads[0].CompanyName)
}

func TestReadFile_XLSX(t *testing.T) {
	path := createTestXLSX(t, [][]string{
		{"Company_Name", "Domain", "Employees", "Revenue_Est"},
		{"Acme", "acme.io", "250", "$12,000,000"},
		{"", "", "", ""},
		{"Beta", "beta.com"},
	})

	leads, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, "lead-0", leads[0].ID)
	assert.Equal(t, "acme.io", leads[0].Domain)
	assert.Equal(t, "250", leads[0].Employees.Raw())
	assert.Equal(t, "$12,000,000", leads[0].RevenueEst.Raw())
	assert.Equal(t, "lead-1", leads[1].ID)
	assert.Equal(t, "Beta", leads[1].CompanyName)
}

func TestReadFile_Unsupported(t *testing.T) {
	path := writeTestFile(t, "leads.txt", "hello")

	_, err := ReadFile(context.Background(), path)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnsupportedFormat))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest: open")
}
