package ingest

import (
	"strconv"
	"strings"

	"github.com/sells-group/leadrank/internal/model"
)

// columnIndex maps lowercased, trimmed header names to their position.
type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// get returns the trimmed cell for a column, or "" when the column is absent
// or the row is short.
func (c columnIndex) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// numeric keeps a cell as text so ParseNumber sees it exactly as uploaded.
func (c columnIndex) numeric(row []string, name string) model.Numeric {
	v := c.get(row, name)
	if v == "" {
		return model.Numeric{}
	}
	return model.TextValue(v)
}

// lead builds the lead for the i-th data row. An explicit id column wins over
// the positional "lead-<i>" id.
func (c columnIndex) lead(row []string, i int) model.Lead {
	id := c.get(row, "id")
	if id == "" {
		id = "lead-" + strconv.Itoa(i)
	}
	return model.Lead{
		ID:            id,
		CompanyName:   c.get(row, "company_name"),
		Domain:        c.get(row, "domain"),
		Employees:     c.numeric(row, "employees"),
		RevenueEst:    c.numeric(row, "revenue_est"),
		Email:         c.get(row, "email"),
		LinkedIn:      c.get(row, "linkedin"),
		Jobs30d:       c.numeric(row, "jobs_30d"),
		RecentFunding: c.get(row, "recent_funding"),
	}
}
