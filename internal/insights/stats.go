// Package insights summarizes a scored lead list: headline stats, data
// quality, outreach recommendations and a printable report.
package insights

import (
	"math"
	"sort"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

const (
	highPriorityScore   = 80
	mediumPriorityScore = 50
	activeHiringJobs    = 2
)

// Stats are the headline numbers of a lead list.
type Stats struct {
	Total        int `json:"total"`
	AverageScore int `json:"average_score"`
	HighPriority int `json:"high_priority"`
	Contactable  int `json:"contactable"`
}

// Summarize computes Stats. The average of an empty list is 0.
func Summarize(leads []model.Lead) Stats {
	s := Stats{Total: len(leads)}
	sum := 0
	for _, l := range leads {
		sum += l.LeadScore
		if l.LeadScore >= highPriorityScore {
			s.HighPriority++
		}
		if normalize.Present(l.Email) {
			s.Contactable++
		}
	}
	if s.Total > 0 {
		s.AverageScore = int(math.Round(float64(sum) / float64(s.Total)))
	}
	return s
}

// PriorityLabel buckets a lead score for display.
func PriorityLabel(score int) string {
	switch {
	case score >= highPriorityScore:
		return "High Priority"
	case score >= mediumPriorityScore:
		return "Medium Priority"
	case score > 0:
		return "Low Priority"
	default:
		return "Unknown"
	}
}

// CategoryAverage is the mean score of one lead category.
type CategoryAverage struct {
	Category string `json:"category"`
	Average  int    `json:"average"`
	Count    int    `json:"count"`
}

// CategoryAverages groups leads by category, sorted by category name. Leads
// without a category are grouped under "Unknown".
func CategoryAverages(leads []model.Lead) []CategoryAverage {
	type acc struct{ total, count int }
	groups := make(map[string]*acc)
	for _, l := range leads {
		cat := string(l.LeadCategory)
		if cat == "" {
			cat = "Unknown"
		}
		g, ok := groups[cat]
		if !ok {
			g = &acc{}
			groups[cat] = g
		}
		g.total += l.LeadScore
		g.count++
	}

	out := make([]CategoryAverage, 0, len(groups))
	for cat, g := range groups {
		out = append(out, CategoryAverage{
			Category: cat,
			Average:  int(math.Round(float64(g.total) / float64(g.count))),
			Count:    g.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// ConfidenceDistribution counts leads per confidence level. Leads without a
// level count as Low.
func ConfidenceDistribution(leads []model.Lead) map[model.ConfidenceLevel]int {
	dist := make(map[model.ConfidenceLevel]int)
	for _, l := range leads {
		level := l.ConfidenceLevel
		if level == "" {
			level = model.ConfidenceLow
		}
		dist[level]++
	}
	return dist
}

// KeyInsights counts the strongest buying signals across the list.
type KeyInsights struct {
	HighAIPotential int `json:"high_ai_potential"`
	Funded          int `json:"funded"`
	ActiveHiring    int `json:"active_hiring"`
}

// Signals computes KeyInsights.
func Signals(leads []model.Lead) KeyInsights {
	var k KeyInsights
	for _, l := range leads {
		if l.AIPotential == model.AIPotentialHigh {
			k.HighAIPotential++
		}
		if normalize.HasFunding(l.RecentFunding) {
			k.Funded++
		}
		if normalize.ParseNumber(l.Jobs30d) >= activeHiringJobs {
			k.ActiveHiring++
		}
	}
	return k
}

// Top returns the first n leads of a ranked list.
func Top(leads []model.Lead, n int) []model.Lead {
	if n < 0 {
		n = 0
	}
	if n > len(leads) {
		n = len(leads)
	}
	return leads[:n:n]
}
