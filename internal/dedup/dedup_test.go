package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadrank/internal/model"
)

func leads(names ...string) []model.Lead {
	out := make([]model.Lead, len(names))
	for i, n := range names {
		out[i] = model.Lead{ID: n + "-id", CompanyName: n}
	}
	return out
}

func names(ls []model.Lead) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.CompanyName
	}
	return out
}

func TestDeduplicate_ExactAfterNormalization(t *testing.T) {
	got := Deduplicate(leads("Acme Inc", "acme inc ", "Beta LLC"))
	assert.Equal(t, []string{"Acme Inc", "Beta LLC"}, names(got))
}

func TestDeduplicate_BlankNamesDropped(t *testing.T) {
	got := Deduplicate(leads("", "   ", "Acme", ""))
	assert.Equal(t, []string{"Acme"}, names(got))
}

func TestDeduplicate_Empty(t *testing.T) {
	got := Deduplicate(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeduplicate_ShortNameKeptByDefault(t *testing.T) {
	got := Deduplicate(leads("AI Ventures", "AI"))
	assert.Equal(t, []string{"AI Ventures", "AI"}, names(got))

	got = New(WithSimilarity(TokenSet)).Deduplicate(leads("AI Ventures", "AI"))
	assert.Equal(t, []string{"AI Ventures", "AI"}, names(got))

	// Coverage divides by the shorter name and swallows it.
	got = New(WithSimilarity(Coverage)).Deduplicate(leads("AI Ventures", "AI"))
	assert.Equal(t, []string{"AI Ventures"}, names(got))
}

func TestDeduplicate_DistinctCompaniesSurvive(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "short names with shared letters",
			in:   []string{"Microsoft Labs", "IBM", "Amazon Web Services", "Zoom", "Salesforce", "Oracle"},
			want: []string{"Microsoft Labs", "IBM", "Amazon Web Services", "Zoom", "Salesforce", "Oracle"},
		},
		{
			name: "base name and suffixed name",
			in:   []string{"Acme", "Acme Corp"},
			want: []string{"Acme", "Acme Corp"},
		},
		{
			name: "case and padding variants still collapse",
			in:   []string{"Oracle", " ORACLE ", "Salesforce"},
			want: []string{"Oracle", "Salesforce"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deduplicate(leads(tt.in...))
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestDeduplicate_CoverageCollapsesDistinctCompanies(t *testing.T) {
	in := leads("Microsoft Labs", "IBM", "Amazon Web Services", "Zoom", "Salesforce", "Oracle")

	got := New(WithSimilarity(Coverage)).Deduplicate(in)
	assert.NotContains(t, names(got), "IBM")
	assert.NotContains(t, names(got), "Oracle")
	assert.Less(t, len(got), len(in))
}

func TestDeduplicate_FirstSeenWins(t *testing.T) {
	in := leads("Acme Inc", "Beta LLC", "ACME INC")
	in[2].Email = "second@acme.com"

	got := Deduplicate(in)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme Inc-id", got[0].ID)
	assert.Empty(t, got[0].Email)
}

func TestDeduplicate_ThresholdIsStrict(t *testing.T) {
	// Coverage("Acme", "Zeta Corp") is exactly 0.75.
	in := leads("Zeta Corp", "Acme")

	got := New(WithSimilarity(Coverage), WithThreshold(0.75)).Deduplicate(in)
	assert.Len(t, got, 2)

	got = New(WithSimilarity(Coverage), WithThreshold(0.74)).Deduplicate(in)
	assert.Equal(t, []string{"Zeta Corp"}, names(got))

	// LengthCoverage("Acme", "Acme Corp") is 4/9.
	in = leads("Acme Corp", "Acme")
	assert.Len(t, New(WithThreshold(4.0/9)).Deduplicate(in), 2)
	assert.Len(t, New(WithThreshold(0.44)).Deduplicate(in), 1)
}

func TestDeduplicate_Idempotent(t *testing.T) {
	in := leads("Acme Inc", "acme inc", "AI", "AI Ventures", "Beta", "Gamma Labs", "Labs Gamma", "", "Delta")

	for _, d := range []*Deduplicator{New(), New(WithSimilarity(Coverage)), New(WithSimilarity(TokenSet))} {
		once := d.Deduplicate(in)
		twice := d.Deduplicate(once)
		assert.Equal(t, once, twice)
		assert.LessOrEqual(t, len(once), len(in))
		for _, l := range once {
			assert.NotEmpty(t, l.CompanyName)
		}
	}
}

func TestDeduplicate_DoesNotAliasInput(t *testing.T) {
	in := leads("Acme", "Beta Corp")
	in[0].TechStack = []string{"Go"}

	got := Deduplicate(in)
	got[0].CompanyName = "Changed"
	got[0].TechStack[0] = "Rust"

	assert.Equal(t, "Acme", in[0].CompanyName)
	assert.Equal(t, []string{"Go"}, in[0].TechStack)
}

func TestNew_NilSimilarityIgnored(t *testing.T) {
	d := New(WithSimilarity(nil))
	got := d.Deduplicate(leads("Acme", "acme"))
	assert.Len(t, got, 1)
}
