package insights

import (
	"fmt"
	"math"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

// keyFields is the number of fields per lead that completeness is measured
// over.
const keyFields = 7

// QualityReport counts data gaps that hurt scoring accuracy or outreach.
type QualityReport struct {
	Total            int `json:"total"`
	MissingEmail     int `json:"missing_email"`
	MissingLinkedIn  int `json:"missing_linkedin"`
	MissingRevenue   int `json:"missing_revenue"`
	MissingEmployees int `json:"missing_employees"`
	LowConfidence    int `json:"low_confidence"`
	NoFunding        int `json:"no_funding"`
	NoHiring         int `json:"no_hiring"`
	// Completeness is a 0-100 percentage. A low-confidence lead costs half a
	// field.
	Completeness int `json:"completeness"`
}

// AssessQuality builds a QualityReport. An empty list is 100% complete.
func AssessQuality(leads []model.Lead) QualityReport {
	q := QualityReport{Total: len(leads)}
	for _, l := range leads {
		if !normalize.Present(l.Email) {
			q.MissingEmail++
		}
		if !normalize.Present(l.LinkedIn) {
			q.MissingLinkedIn++
		}
		if !l.RevenueEst.Filled() {
			q.MissingRevenue++
		}
		if !l.Employees.Filled() {
			q.MissingEmployees++
		}
		if l.ConfidenceLevel == model.ConfidenceLow {
			q.LowConfidence++
		}
		if !normalize.HasFunding(l.RecentFunding) {
			q.NoFunding++
		}
		if normalize.ParseNumber(l.Jobs30d) == 0 {
			q.NoHiring++
		}
	}

	if q.Total == 0 {
		q.Completeness = 100
		return q
	}
	total := float64(q.Total * keyFields)
	missing := float64(q.MissingEmail+q.MissingLinkedIn+q.MissingRevenue+
		q.MissingEmployees+q.NoFunding+q.NoHiring) + 0.5*float64(q.LowConfidence)
	q.Completeness = int(math.Round((total - missing) / total * 100))
	return q
}

// HasWarnings reports whether any contact or scoring gap is present.
func (q QualityReport) HasWarnings() bool {
	return q.MissingEmail > 0 || q.MissingLinkedIn > 0 || q.MissingRevenue > 0 || q.LowConfidence > 0
}

// Warnings lists one message per data gap.
func (q QualityReport) Warnings() []string {
	var w []string
	if q.MissingEmail > 0 {
		w = append(w, fmt.Sprintf("%d leads missing email addresses", q.MissingEmail))
	}
	if q.MissingLinkedIn > 0 {
		w = append(w, fmt.Sprintf("%d leads missing LinkedIn profiles", q.MissingLinkedIn))
	}
	if q.MissingRevenue > 0 {
		w = append(w, fmt.Sprintf("%d leads missing revenue estimates", q.MissingRevenue))
	}
	if q.MissingEmployees > 0 {
		w = append(w, fmt.Sprintf("%d leads missing employee counts", q.MissingEmployees))
	}
	if q.LowConfidence > 0 {
		w = append(w, fmt.Sprintf("%d low confidence leads", q.LowConfidence))
	}
	return w
}

// Actions lists the follow-ups that would close the gaps.
func (q QualityReport) Actions() []string {
	var a []string
	if q.MissingEmail > 0 {
		a = append(a, fmt.Sprintf("Enrich %d leads with email addresses for direct outreach", q.MissingEmail))
	}
	if q.MissingLinkedIn > 0 {
		a = append(a, fmt.Sprintf("Add LinkedIn profiles to %d leads for social selling", q.MissingLinkedIn))
	}
	if q.LowConfidence > 0 {
		a = append(a, fmt.Sprintf("Verify and complete data for %d low-confidence leads", q.LowConfidence))
	}
	if q.NoHiring > 0 {
		a = append(a, fmt.Sprintf("Monitor %d companies for hiring activity", q.NoHiring))
	}
	return a
}
