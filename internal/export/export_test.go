package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/scorer"
)

func testLeads() []model.Lead {
	scored := scorer.ScoreLead(model.Lead{
		ID:            "lead-0",
		CompanyName:   "Acme, Inc.",
		Domain:        "acme.io",
		Employees:     model.NumberValue(120),
		RevenueEst:    model.TextValue("$1,200,000"),
		Email:         "a@acme.io",
		Jobs30d:       model.NumberValue(5),
		RecentFunding: "Series A",
	})
	raw := model.Lead{ID: "lead-1", CompanyName: `Quote "Co"`}
	return []model.Lead{scored, raw}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testLeads()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Columns, records[0])

	row := records[1]
	require.Len(t, row, len(Columns))
	assert.Equal(t, "Acme, Inc.", row[0])
	assert.Equal(t, "120", row[2])
	assert.Equal(t, "$1,200,000", row[3])
	assert.Equal(t, "Series A", row[5])
	assert.Equal(t, "100", row[10])
	assert.Equal(t, "80", row[11])
	assert.Equal(t, "55", row[12])
	assert.Equal(t, "70", row[13])
	assert.Equal(t, "87.5", row[14])
	assert.Equal(t, "Recent funding round • High hiring momentum (5 jobs)", row[17])

	unscored := records[2]
	assert.Equal(t, `Quote "Co"`, unscored[0])
	assert.Empty(t, unscored[6])
	assert.Empty(t, unscored[10])
}

func TestWriteCSV_ScoreMatchesLead(t *testing.T) {
	leads := testLeads()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, leads))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(leads[0].LeadScore), records[1][6])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testLeads()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Acme, Inc.", got[0]["company_name"])
	assert.Equal(t, "$1,200,000", got[0]["revenue_est"])
	assert.InDelta(t, 120, got[0]["employees"], 0)
	assert.Contains(t, got[0], "breakdown")
	assert.NotContains(t, got[1], "breakdown")
	assert.NotContains(t, got[1], "employees")
}

func TestWriteJSON_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testLeads()))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet, ok := f.Sheet[SheetName]
	require.True(t, ok)
	require.GreaterOrEqual(t, len(sheet.Rows), 3)
	assert.Equal(t, "Company", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "Explanation", sheet.Rows[0].Cells[len(Columns)-1].String())
	assert.Equal(t, "Acme, Inc.", sheet.Rows[1].Cells[0].String())
}

func TestWrite_Dispatch(t *testing.T) {
	for _, format := range []string{"csv", "JSON", "xlsx"} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, format, testLeads()), format)
		assert.NotZero(t, buf.Len(), format)
		assert.True(t, ValidFormat(format))
	}

	err := Write(&bytes.Buffer{}, "pdf", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.False(t, ValidFormat("pdf"))
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "prioritized_leads_2025-06-15.csv", FileName(now, "csv"))
	assert.Equal(t, "prioritized_leads_2025-06-15.xlsx", FileName(now, ".xlsx"))
}
