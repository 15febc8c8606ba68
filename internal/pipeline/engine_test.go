package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadrank/internal/dedup"
	"github.com/sells-group/leadrank/internal/model"
)

func TestScoreAndDeduplicate_RanksAndDedups(t *testing.T) {
	in := []model.Lead{
		{ID: "1", CompanyName: "Acme Inc"},
		{ID: "2", CompanyName: "acme inc ", RecentFunding: "Series A"},
		{ID: "3", CompanyName: "Beta LLC", RecentFunding: "Seed", Jobs30d: model.NumberValue(12)},
		{ID: "4", CompanyName: ""},
	}

	got := ScoreAndDeduplicate(in)

	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
	for _, l := range got {
		assert.NotNil(t, l.Breakdown)
	}
	assert.GreaterOrEqual(t, got[0].LeadScore, got[1].LeadScore)
}

func TestScoreAndDeduplicate_Batches(t *testing.T) {
	tests := []struct {
		name  string
		in    []model.Lead
		check func(t *testing.T, got []model.Lead)
	}{
		{
			name: "suffixed name is a different company",
			in: []model.Lead{
				{ID: "acme", CompanyName: "Acme", Jobs30d: model.NumberValue(12), RecentFunding: "Series B"},
				{ID: "acme-corp", CompanyName: "Acme Corp", Jobs30d: model.NumberValue(1)},
			},
			check: func(t *testing.T, got []model.Lead) {
				require.Len(t, got, 2)
				assert.Equal(t, "acme", got[0].ID)
				require.NotNil(t, got[0].Breakdown)
				assert.InDelta(t, 100, got[0].Breakdown.Funding, 1e-9)
				assert.InDelta(t, 100, got[0].Breakdown.Hiring, 1e-9)
				assert.Equal(t, "acme-corp", got[1].ID)
				require.NotNil(t, got[1].Breakdown)
				assert.InDelta(t, 40, got[1].Breakdown.Hiring, 1e-9)
				assert.Zero(t, got[1].Breakdown.Funding)
			},
		},
		{
			name: "short names sharing letters with longer ones",
			in: []model.Lead{
				{ID: "1", CompanyName: "Microsoft Labs"},
				{ID: "2", CompanyName: "IBM", RecentFunding: "Series C", Jobs30d: model.NumberValue(20)},
				{ID: "3", CompanyName: "Amazon Web Services"},
				{ID: "4", CompanyName: "Zoom"},
				{ID: "5", CompanyName: "Salesforce"},
				{ID: "6", CompanyName: "Oracle"},
			},
			check: func(t *testing.T, got []model.Lead) {
				require.Len(t, got, 6)
				assert.Equal(t, "IBM", got[0].CompanyName)
				ids := make([]string, len(got))
				for i, l := range got {
					ids[i] = l.ID
				}
				assert.ElementsMatch(t, []string{"1", "2", "3", "4", "5", "6"}, ids)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ScoreAndDeduplicate(tt.in))
		})
	}
}

func TestScoreAndDeduplicate_StableTies(t *testing.T) {
	in := []model.Lead{
		{ID: "a", CompanyName: "Zeta"},
		{ID: "b", CompanyName: "Qux"},
		{ID: "c", CompanyName: "Bravo"},
	}

	got := ScoreAndDeduplicate(in)

	require.Len(t, got, 3)
	assert.Equal(t, got[0].LeadScore, got[2].LeadScore)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestScoreAndDeduplicate_Empty(t *testing.T) {
	got := ScoreAndDeduplicate(nil)
	assert.Empty(t, got)

	got = ScoreAndDeduplicate([]model.Lead{{CompanyName: "  "}})
	assert.Empty(t, got)
}

func TestScoreAndDeduplicate_SortedDescending(t *testing.T) {
	in := []model.Lead{
		{CompanyName: "Small Shop"},
		{CompanyName: "Mid Market Co", Employees: model.NumberValue(300), Jobs30d: model.NumberValue(3)},
		{CompanyName: "Big Enterprise", Employees: model.NumberValue(5000), RevenueEst: model.TextValue("$90,000,000"), RecentFunding: "Series D"},
		{CompanyName: "Quiet Startup", Domain: "quiet.io"},
	}

	got := ScoreAndDeduplicate(in)

	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].LeadScore, got[i].LeadScore)
	}
	assert.Equal(t, "Big Enterprise", got[0].CompanyName)
	assert.Nil(t, in[0].Breakdown)
}

func TestEngine_WithSignals(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	e := NewEngine(WithSignals(func() time.Time { return now }))

	got := e.Run([]model.Lead{{CompanyName: "Acme", Email: "a@acme.com"}})

	require.Len(t, got, 1)
	assert.Equal(t, now, got[0].LastVerified)
	assert.Equal(t, model.FreshnessFresh, got[0].DataFreshness)
	assert.NotNil(t, got[0].DataQualityScore)
}

func TestEngine_WithDeduplicator(t *testing.T) {
	in := []model.Lead{{CompanyName: "AI Ventures"}, {CompanyName: "AI"}}

	assert.Len(t, NewEngine().Run(in), 2)
	assert.Len(t, NewEngine(WithDeduplicator(dedup.New(dedup.WithSimilarity(dedup.TokenSet)))).Run(in), 2)
	assert.Len(t, NewEngine(WithDeduplicator(dedup.New(dedup.WithSimilarity(dedup.Coverage)))).Run(in), 1)
	assert.Len(t, NewEngine(WithDeduplicator(nil)).Run(in), 2)
}
