package scorer

import (
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

// Tier is one bucket of a step function: values >= Min score Score.
type Tier struct {
	Min   float64 `yaml:"min" json:"min"`
	Score float64 `yaml:"score" json:"score"`
}

// Tiers are ordered by descending Min; the first match wins.
var (
	hiringTiers = []Tier{
		{Min: 10, Score: 100},
		{Min: 5, Score: 80},
		{Min: 2, Score: 60},
		{Min: 1, Score: 40},
	}

	revenueTiers = []Tier{
		{Min: 50_000_000, Score: 100},
		{Min: 10_000_000, Score: 85},
		{Min: 5_000_000, Score: 70},
		{Min: 1_000_000, Score: 55},
		{Min: 100_000, Score: 30},
	}

	sizeTiers = []Tier{
		{Min: 1000, Score: 100},
		{Min: 250, Score: 85},
		{Min: 50, Score: 70},
		{Min: 10, Score: 50},
	}
)

const (
	hiringFloor  = 0
	revenueFloor = 10
	sizeFloor    = 25
)

// stepScore returns the score of the first tier whose Min v reaches, or
// floor when none does.
func stepScore(v float64, tiers []Tier, floor float64) float64 {
	for _, t := range tiers {
		if v >= t.Min {
			return t.Score
		}
	}
	return floor
}

// FundingScore is 100 when the lead reports a funding event, else 0.
func FundingScore(l model.Lead) float64 {
	if normalize.HasFunding(l.RecentFunding) {
		return 100
	}
	return 0
}

// HiringScore buckets jobs posted in the last 30 days.
func HiringScore(l model.Lead) float64 {
	return stepScore(normalize.ParseNumber(l.Jobs30d), hiringTiers, hiringFloor)
}

// RevenueScore buckets estimated annual revenue.
func RevenueScore(l model.Lead) float64 {
	return stepScore(normalize.ParseNumber(l.RevenueEst), revenueTiers, revenueFloor)
}

// SizeScore buckets headcount.
func SizeScore(l model.Lead) float64 {
	return stepScore(normalize.ParseNumber(l.Employees), sizeTiers, sizeFloor)
}

// completenessFields is the fixed checklist behind ConfidenceScore and the
// data quality score.
const completenessFields = 8

// filledFields counts populated entries of the completeness checklist:
// company_name, domain, employees, revenue_est, email, linkedin, jobs_30d,
// recent_funding.
func filledFields(l model.Lead) int {
	n := 0
	for _, ok := range []bool{
		normalize.Present(l.CompanyName),
		normalize.Present(l.Domain),
		l.Employees.Filled(),
		l.RevenueEst.Filled(),
		normalize.Present(l.Email),
		normalize.Present(l.LinkedIn),
		l.Jobs30d.Filled(),
		normalize.Present(l.RecentFunding),
	} {
		if ok {
			n++
		}
	}
	return n
}

// ConfidenceScore is the filled share of the completeness checklist, 0-100.
func ConfidenceScore(l model.Lead) float64 {
	return float64(filledFields(l)) / completenessFields * 100
}

// ComputeBreakdown runs every component scorer.
func ComputeBreakdown(l model.Lead) model.Breakdown {
	return model.Breakdown{
		Funding:    FundingScore(l),
		Hiring:     HiringScore(l),
		Revenue:    RevenueScore(l),
		Size:       SizeScore(l),
		Confidence: ConfidenceScore(l),
	}
}
