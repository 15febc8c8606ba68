package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadrank/internal/model"
)

const sampleCSV = `company_name, Domain ,employees,revenue_est,email,linkedin,jobs_30d,recent_funding
Acme,acme.io,120,"$1,200,000",a@acme.io,,5,Series A
Beta,beta.com
`

func TestParseCSV(t *testing.T) {
	leads, err := ParseCSV(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, model.Lead{
		ID:            "lead-0",
		CompanyName:   "Acme",
		Domain:        "acme.io",
		Employees:     model.TextValue("120"),
		RevenueEst:    model.TextValue("$1,200,000"),
		Email:         "a@acme.io",
		Jobs30d:       model.TextValue("5"),
		RecentFunding: "Series A",
	}, leads[0])

	assert.Equal(t, "lead-1", leads[1].ID)
	assert.Equal(t, "beta.com", leads[1].Domain)
	assert.True(t, leads[1].Employees.IsZero())
	assert.Empty(t, leads[1].RecentFunding)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	leads, err := ParseCSV(context.Background(), strings.NewReader("company_name,domain\n"))
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(context.Background(), strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv is empty")
}

func TestParseCSV_ExplicitIDAndUnknownColumns(t *testing.T) {
	in := "ID,Company_Name,notes\nabc-1,Acme,ignored\n,Beta,\n"

	leads, err := ParseCSV(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "abc-1", leads[0].ID)
	assert.Equal(t, "lead-1", leads[1].ID)
	assert.Equal(t, "Beta", leads[1].CompanyName)
}

func TestParseCSV_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseCSV(ctx, strings.NewReader(sampleCSV))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context cancelled")
}
