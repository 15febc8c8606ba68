package insights

import (
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

const (
	immediateScore = 85
	nextWeekScore  = 70
	nurtureScore   = 50
	tierCap        = 5
)

// Contact methods.
const (
	MethodEmail    = "email"
	MethodLinkedIn = "linkedin"
)

// Recommendation is one lead to reach out to and how.
type Recommendation struct {
	LeadID  string   `json:"lead_id"`
	Company string   `json:"company"`
	Score   int      `json:"score"`
	Methods []string `json:"methods"`
}

// Recommendations are outreach tiers, each holding at most five leads in
// ranked order.
type Recommendations struct {
	Immediate []Recommendation `json:"immediate"`
	NextWeek  []Recommendation `json:"next_week"`
	Nurture   []Recommendation `json:"nurture"`
}

// Recommend assigns leads to outreach tiers:
//   - Immediate: score >= 85, high AI potential, an email and confidence
//     above Low.
//   - NextWeek: score in [70, 85) with confidence above Low.
//   - Nurture: score in [50, 70).
//
// A lead can appear in at most one tier. leads should already be ranked.
func Recommend(leads []model.Lead) Recommendations {
	r := Recommendations{
		Immediate: []Recommendation{},
		NextWeek:  []Recommendation{},
		Nurture:   []Recommendation{},
	}
	for _, l := range leads {
		confident := l.ConfidenceLevel != model.ConfidenceLow
		switch s := l.LeadScore; {
		case s >= immediateScore && l.AIPotential == model.AIPotentialHigh && normalize.Present(l.Email) && confident:
			r.Immediate = appendCapped(r.Immediate, l)
		case s >= nextWeekScore && s < immediateScore && confident:
			r.NextWeek = appendCapped(r.NextWeek, l)
		case s >= nurtureScore && s < nextWeekScore:
			r.Nurture = appendCapped(r.Nurture, l)
		}
	}
	return r
}

func appendCapped(tier []Recommendation, l model.Lead) []Recommendation {
	if len(tier) >= tierCap {
		return tier
	}
	return append(tier, Recommendation{
		LeadID:  l.ID,
		Company: l.CompanyName,
		Score:   l.LeadScore,
		Methods: contactMethods(l),
	})
}

func contactMethods(l model.Lead) []string {
	methods := []string{}
	if normalize.Present(l.Email) {
		methods = append(methods, MethodEmail)
	}
	if normalize.Present(l.LinkedIn) {
		methods = append(methods, MethodLinkedIn)
	}
	return methods
}
