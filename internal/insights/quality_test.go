package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadrank/internal/model"
)

func completeLead(id string) model.Lead {
	return lead(id, 90, withEmail, withLinkedIn, func(l *model.Lead) {
		l.RevenueEst = model.NumberValue(1_000_000)
		l.Employees = model.NumberValue(20)
		l.RecentFunding = "Seed"
		l.Jobs30d = model.NumberValue(3)
	})
}

func TestAssessQuality_Complete(t *testing.T) {
	q := AssessQuality([]model.Lead{completeLead("a"), completeLead("b")})

	assert.Equal(t, 100, q.Completeness)
	assert.False(t, q.HasWarnings())
	assert.Empty(t, q.Warnings())
	assert.Empty(t, q.Actions())
}

func TestAssessQuality_Empty(t *testing.T) {
	q := AssessQuality(nil)
	assert.Equal(t, 100, q.Completeness)
	assert.False(t, q.HasWarnings())
}

func TestAssessQuality_Gaps(t *testing.T) {
	sparse := lead("b", 20, lowConf)
	q := AssessQuality([]model.Lead{completeLead("a"), sparse})

	assert.Equal(t, 1, q.MissingEmail)
	assert.Equal(t, 1, q.MissingLinkedIn)
	assert.Equal(t, 1, q.MissingRevenue)
	assert.Equal(t, 1, q.MissingEmployees)
	assert.Equal(t, 1, q.LowConfidence)
	assert.Equal(t, 1, q.NoFunding)
	assert.Equal(t, 1, q.NoHiring)
	// (14 - 6.5) / 14 = 53.57%
	assert.Equal(t, 54, q.Completeness)
	assert.True(t, q.HasWarnings())

	require.Len(t, q.Warnings(), 5)
	assert.Equal(t, "1 leads missing email addresses", q.Warnings()[0])
	assert.Equal(t, []string{
		"Enrich 1 leads with email addresses for direct outreach",
		"Add LinkedIn profiles to 1 leads for social selling",
		"Verify and complete data for 1 low-confidence leads",
		"Monitor 1 companies for hiring activity",
	}, q.Actions())
}

func TestAssessQuality_HiringGapAloneIsNotAWarning(t *testing.T) {
	l := completeLead("a")
	l.Jobs30d = model.Numeric{}
	q := AssessQuality([]model.Lead{l})

	assert.Equal(t, 1, q.NoHiring)
	assert.False(t, q.HasWarnings())
	assert.Len(t, q.Actions(), 1)
}
