// Package normalize coerces heterogeneous lead fields into clean primitives.
// Every numeric scorer reads its input through ParseNumber.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/leadrank/internal/model"
)

// leadingDecimal matches the longest decimal literal at the start of a string
// that contains only digits, '.' and '-'.
var leadingDecimal = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)

// ParseNumber converts a numeric-ish field to a float. Absent fields and text
// with no parseable number yield 0. It never fails.
func ParseNumber(n model.Numeric) float64 {
	if v, ok := n.Number(); ok {
		return v
	}
	if s, ok := n.Text(); ok {
		return ParseString(s)
	}
	return 0
}

// ParseString strips every rune that is not a digit, '.' or '-' and parses
// the leading decimal literal of what remains, so "$1,200,000" becomes
// 1200000 and "1.5M" becomes 1.5.
func ParseString(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	lit := leadingDecimal.FindString(cleaned)
	if lit == "" {
		return 0
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0
	}
	return v
}

// Present reports whether a text field is non-blank.
func Present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// HasFunding reports whether recent_funding signals a funding event. Blank
// values and a literal "no" in any case mean no funding.
func HasFunding(recentFunding string) bool {
	v := strings.TrimSpace(recentFunding)
	return v != "" && !strings.EqualFold(v, "no")
}
