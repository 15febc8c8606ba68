package insights

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/sells-group/leadrank/internal/model"
)

const topLeads = 10

// RenderMarkdown builds a prioritization report for a ranked lead list.
func RenderMarkdown(leads []model.Lead, now time.Time) string {
	var b strings.Builder

	stats := Summarize(leads)
	b.WriteString("# Lead Prioritization Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.UTC().Format(time.RFC3339))

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Total leads: %d\n", stats.Total)
	fmt.Fprintf(&b, "- Average score: %d\n", stats.AverageScore)
	fmt.Fprintf(&b, "- High priority: %d\n", stats.HighPriority)
	fmt.Fprintf(&b, "- Contactable: %d\n\n", stats.Contactable)

	k := Signals(leads)
	b.WriteString("## Key Signals\n")
	fmt.Fprintf(&b, "- High AI potential: %d\n", k.HighAIPotential)
	fmt.Fprintf(&b, "- Recently funded: %d\n", k.Funded)
	fmt.Fprintf(&b, "- Actively hiring: %d\n\n", k.ActiveHiring)

	b.WriteString("## Categories\n")
	cats := CategoryAverages(leads)
	if len(cats) == 0 {
		b.WriteString("No leads.\n\n")
	} else {
		b.WriteString("| Category | Leads | Avg Score |\n|---|---|---|\n")
		for _, c := range cats {
			fmt.Fprintf(&b, "| %s | %d | %d |\n", c.Category, c.Count, c.Average)
		}
		b.WriteString("\n")
	}

	dist := ConfidenceDistribution(leads)
	b.WriteString("## Confidence\n")
	for _, level := range []model.ConfidenceLevel{model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow} {
		fmt.Fprintf(&b, "- %s: %d\n", level, dist[level])
	}
	b.WriteString("\n")

	top := Top(leads, topLeads)
	fmt.Fprintf(&b, "## Top %d Leads\n", topLeads)
	if len(top) == 0 {
		b.WriteString("No leads.\n\n")
	} else {
		b.WriteString("| # | Company | Score | Priority | Category | Why |\n|---|---|---|---|---|---|\n")
		for i, l := range top {
			fmt.Fprintf(&b, "| %d | %s | %d | %s | %s | %s |\n",
				i+1, cell(l.CompanyName), l.LeadScore, PriorityLabel(l.LeadScore), l.LeadCategory, cell(l.Explanation))
		}
		b.WriteString("\n")
	}

	q := AssessQuality(leads)
	b.WriteString("## Data Quality\n")
	fmt.Fprintf(&b, "- Completeness: %d%%\n", q.Completeness)
	for _, w := range q.Warnings() {
		fmt.Fprintf(&b, "- Warning: %s\n", w)
	}
	for _, a := range q.Actions() {
		fmt.Fprintf(&b, "- Action: %s\n", a)
	}
	b.WriteString("\n")

	r := Recommend(leads)
	b.WriteString("## Outreach\n")
	writeTier(&b, "Contact immediately", r.Immediate)
	writeTier(&b, "Contact next week", r.NextWeek)
	writeTier(&b, "Nurture", r.Nurture)

	return b.String()
}

func writeTier(b *strings.Builder, title string, recs []Recommendation) {
	fmt.Fprintf(b, "### %s\n", title)
	if len(recs) == 0 {
		b.WriteString("None.\n\n")
		return
	}
	for _, r := range recs {
		methods := "none"
		if len(r.Methods) > 0 {
			methods = strings.Join(r.Methods, ", ")
		}
		fmt.Fprintf(b, "- %s (%d) via %s\n", r.Company, r.Score, methods)
	}
	b.WriteString("\n")
}

// cell escapes table delimiters in free text.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderHTML converts a markdown report to HTML with GitHub-flavored tables.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", eris.Wrap(err, "insights: render html")
	}
	return buf.String(), nil
}
