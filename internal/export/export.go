// Package export writes ranked leads as CSV, XLSX or JSON.
package export

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/model"
)

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// Columns is the fixed column order of tabular exports.
var Columns = []string{
	"Company",
	"Domain",
	"Employees",
	"Revenue Est",
	"Jobs (30d)",
	"Recent Funding",
	"Score",
	"Confidence",
	"AI Potential",
	"Lead Category",
	"Funding Score",
	"Hiring Score",
	"Revenue Score",
	"Size Score",
	"Confidence Score",
	"Email",
	"LinkedIn",
	"Explanation",
}

// ValidFormat reports whether format names a supported export format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatCSV, FormatXLSX, FormatJSON:
		return true
	default:
		return false
	}
}

// Write serializes leads in the given format.
func Write(w io.Writer, format string, leads []model.Lead) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return WriteCSV(w, leads)
	case FormatXLSX:
		return WriteXLSX(w, leads)
	case FormatJSON:
		return WriteJSON(w, leads)
	default:
		return eris.Errorf("export: unsupported format %q", format)
	}
}

// WriteJSON writes leads as an indented JSON array.
func WriteJSON(w io.Writer, leads []model.Lead) error {
	if leads == nil {
		leads = []model.Lead{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(leads); err != nil {
		return eris.Wrap(err, "export: encode json")
	}
	return nil
}

// FileName returns the conventional export name for a run on day now, e.g.
// prioritized_leads_2025-06-15.csv.
func FileName(now time.Time, ext string) string {
	return "prioritized_leads_" + now.Format(time.DateOnly) + "." + strings.TrimPrefix(ext, ".")
}

// buildRow maps a lead to the cells of Columns.
func buildRow(l model.Lead) []string {
	var b model.Breakdown
	score := ""
	if l.Breakdown != nil {
		b = *l.Breakdown
		score = strconv.Itoa(l.LeadScore)
	}

	return []string{
		l.CompanyName,             // Company
		l.Domain,                  // Domain
		l.Employees.Raw(),         // Employees
		l.RevenueEst.Raw(),        // Revenue Est
		l.Jobs30d.Raw(),           // Jobs (30d)
		l.RecentFunding,           // Recent Funding
		score,                     // Score
		string(l.ConfidenceLevel), // Confidence
		string(l.AIPotential),     // AI Potential
		string(l.LeadCategory),    // Lead Category
		subScore(l, b.Funding),    // Funding Score
		subScore(l, b.Hiring),     // Hiring Score
		subScore(l, b.Revenue),    // Revenue Score
		subScore(l, b.Size),       // Size Score
		subScore(l, b.Confidence), // Confidence Score
		l.Email,                   // Email
		l.LinkedIn,                // LinkedIn
		l.Explanation,             // Explanation
	}
}

func subScore(l model.Lead, v float64) string {
	if !l.Scored() {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
