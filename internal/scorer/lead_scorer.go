package scorer

import (
	"math"
	"strconv"
	"strings"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

// Level boundaries, inclusive on the lower bound.
const (
	confidenceHigh   = 75
	confidenceMedium = 50

	aiHigh   = 75
	aiMedium = 45
)

// Category boundaries on raw input values.
const (
	enterpriseEmployees = 500
	enterpriseRevenue   = 50_000_000
	growthEmployees     = 50
	growthRevenue       = 5_000_000
	growthJobs          = 3
)

const (
	explanationSeparator = " • "
	baselineExplanation  = "Baseline fit"
)

// Weighted returns the weighted sum of a breakdown. Each product is rounded
// to float64 before it is added so the result does not depend on whether the
// platform fuses multiply-add.
func Weighted(b model.Breakdown, w Weights) float64 {
	sum := float64(b.Funding * w.Funding)
	sum += float64(b.Hiring * w.Hiring)
	sum += float64(b.Revenue * w.Revenue)
	sum += float64(b.Size * w.Size)
	sum += float64(b.Confidence * w.Confidence)
	return sum
}

// ScoreLead returns a copy of l with every derived field populated and any
// caller-supplied secondary signals cleared. The input is not modified.
func ScoreLead(l model.Lead) model.Lead {
	out := l.Clone()
	out.ClearSignals()
	b := ComputeBreakdown(l)

	out.Breakdown = &b
	out.LeadScore = int(math.Round(Weighted(b, DefaultWeights())))
	out.ConfidenceLevel = confidenceLevel(b.Confidence)
	out.AIPotential = aiPotential(b)
	out.LeadCategory = category(l)
	out.Explanation = explain(l)
	return out
}

func confidenceLevel(confidence float64) model.ConfidenceLevel {
	switch {
	case confidence >= confidenceHigh:
		return model.ConfidenceHigh
	case confidence >= confidenceMedium:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

// aiScore estimates AI adoption readiness from funding, hiring and size.
func aiScore(b model.Breakdown) float64 {
	s := float64(b.Funding * aiWeights.Funding)
	s += float64(b.Hiring * aiWeights.Hiring)
	s += float64(b.Size * aiWeights.Size)
	return s
}

func aiPotential(b model.Breakdown) model.AIPotential {
	switch s := aiScore(b); {
	case s >= aiHigh:
		return model.AIPotentialHigh
	case s >= aiMedium:
		return model.AIPotentialMedium
	default:
		return model.AIPotentialLow
	}
}

func category(l model.Lead) model.Category {
	employees := normalize.ParseNumber(l.Employees)
	revenue := normalize.ParseNumber(l.RevenueEst)
	jobs := normalize.ParseNumber(l.Jobs30d)

	switch {
	case employees >= enterpriseEmployees || revenue >= enterpriseRevenue:
		return model.CategoryEnterprise
	case employees >= growthEmployees || revenue >= growthRevenue || jobs >= growthJobs:
		return model.CategoryGrowth
	default:
		return model.CategoryStartup
	}
}

// explain builds the human-readable rationale from the strongest signals.
func explain(l model.Lead) string {
	var clauses []string

	if normalize.HasFunding(l.RecentFunding) {
		clauses = append(clauses, "Recent funding round")
	}

	jobs := normalize.ParseNumber(l.Jobs30d)
	switch {
	case jobs >= 5:
		clauses = append(clauses, "High hiring momentum ("+formatCount(jobs)+" jobs)")
	case jobs >= 2:
		clauses = append(clauses, "Active hiring ("+formatCount(jobs)+" jobs)")
	}

	if normalize.ParseNumber(l.RevenueEst) >= 10_000_000 {
		clauses = append(clauses, "Strong revenue base")
	}

	if len(clauses) == 0 {
		return baselineExplanation
	}
	return strings.Join(clauses, explanationSeparator)
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
