package scorer

import (
	"math"
	"time"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

const (
	freshDays    = 30
	moderateDays = 90

	// Share of data_quality_score carried by overall completeness; the rest
	// comes from the critical contact fields.
	qualityCompletenessShare = 70
	qualityCriticalShare     = 30
	criticalFields           = 3
)

// ApplySignals returns a copy of l with the secondary signals set: freshness,
// growth velocity, company signals, data quality and verification time. now
// stands in for the wall clock so results are reproducible.
func ApplySignals(l model.Lead, now time.Time) model.Lead {
	out := l.Clone()

	if out.EnrichmentDate.IsZero() {
		out.EnrichmentDate = now
	}
	out.DataFreshness = freshness(out.EnrichmentDate, now)
	out.GrowthVelocity = growthVelocity(l)
	out.CompanySignals = companySignals(l)

	q := dataQuality(l)
	out.DataQualityScore = &q
	out.LastVerified = now
	return out
}

func freshness(enriched, now time.Time) model.Freshness {
	days := math.Floor(now.Sub(enriched).Hours() / 24)
	switch {
	case days <= freshDays:
		return model.FreshnessFresh
	case days <= moderateDays:
		return model.FreshnessModerate
	default:
		return model.FreshnessStale
	}
}

func growthVelocity(l model.Lead) model.Velocity {
	jobs := normalize.ParseNumber(l.Jobs30d)
	funded := normalize.HasFunding(l.RecentFunding)

	switch {
	case jobs >= 5 && funded:
		return model.VelocityHigh
	case jobs >= 2 || funded:
		return model.VelocityMedium
	default:
		return model.VelocityLow
	}
}

func companySignals(l model.Lead) []string {
	var signals []string

	if normalize.HasFunding(l.RecentFunding) {
		signals = append(signals, "Recent Funding Round")
	}

	switch jobs := normalize.ParseNumber(l.Jobs30d); {
	case jobs >= 10:
		signals = append(signals, "Aggressive Hiring")
	case jobs >= 5:
		signals = append(signals, "Active Recruitment")
	case jobs >= 2:
		signals = append(signals, "Growing Team")
	}

	switch revenue := normalize.ParseNumber(l.RevenueEst); {
	case revenue >= 50_000_000:
		signals = append(signals, "Enterprise Revenue")
	case revenue >= 10_000_000:
		signals = append(signals, "Strong Revenue Base")
	}

	return signals
}

// dataQuality blends overall completeness with presence of the fields needed
// to reach someone: company name, domain and email.
func dataQuality(l model.Lead) int {
	critical := 0
	for _, s := range []string{l.CompanyName, l.Domain, l.Email} {
		if normalize.Present(s) {
			critical++
		}
	}

	score := float64(filledFields(l))/completenessFields*qualityCompletenessShare +
		float64(critical)/criticalFields*qualityCriticalShare
	return int(math.Round(score))
}
