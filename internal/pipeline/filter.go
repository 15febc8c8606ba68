package pipeline

import (
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

// highIntentHiring is the minimum hiring sub-score of a high-intent lead.
const highIntentHiring = 60

// Filter narrows a ranked lead list. The zero value keeps everything.
type Filter struct {
	MinScore       int  `json:"min_score"`
	EmailOnly      bool `json:"email_only"`
	HighIntentOnly bool `json:"high_intent_only"`
}

// Apply returns the leads that pass f, preserving order.
func Apply(leads []model.Lead, f Filter) []model.Lead {
	out := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		if f.keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func (f Filter) keep(l model.Lead) bool {
	if l.LeadScore < f.MinScore {
		return false
	}
	if f.EmailOnly && !normalize.Present(l.Email) {
		return false
	}
	if f.HighIntentOnly && (l.Breakdown == nil || l.Breakdown.Hiring < highIntentHiring) {
		return false
	}
	return true
}
