package dedup

import (
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/normalize"
)

// Similarity scores how alike two company names are, from 0 (unrelated) to
// 1 (same company).
type Similarity func(a, b string) float64

// Strategy names accepted by StrategyByName.
const (
	StrategyCoverage       = "coverage"
	StrategyLengthCoverage = "length_coverage"
	StrategyTokenSet       = "token_set"
)

// StrategyByName resolves a configured similarity strategy. An empty name
// selects LengthCoverage.
func StrategyByName(name string) (Similarity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyCoverage:
		return Coverage, nil
	case StrategyLengthCoverage, "":
		return LengthCoverage, nil
	case StrategyTokenSet:
		return TokenSet, nil
	default:
		return nil, eris.Errorf("dedup: unknown similarity strategy %q", name)
	}
}

// Coverage is the share of the shorter name's characters that appear
// anywhere in the longer name. Order and repetition are ignored, so a short
// name whose letters all occur in a longer one scores 1.0: "AI" against
// "AI Ventures" is a match, and so is "Oracle" against "Salesforce". Only
// use it for lists where short names are known to be abbreviations.
func Coverage(a, b string) float64 {
	shorter, longer, same := orient(a, b)
	if same {
		return 1
	}
	n := utf8.RuneCountInString(shorter)
	if n == 0 {
		return 0
	}
	return float64(sharedRunes(shorter, longer)) / float64(n)
}

// LengthCoverage counts the same shared characters as Coverage but divides
// by the length of the longer name, which penalizes length differences.
// "AI" against "AI Ventures" scores 2/11 and "Acme" against "Acme Corp"
// 4/9. It is the default metric.
func LengthCoverage(a, b string) float64 {
	shorter, longer, same := orient(a, b)
	if same {
		return 1
	}
	return float64(sharedRunes(shorter, longer)) / float64(utf8.RuneCountInString(longer))
}

// TokenSet is the Jaccard similarity of the canonical word sets of both
// names. Word order and legal suffixes are ignored: "Labs Growth" and
// "Growth Labs, Inc." score 1.0.
func TokenSet(a, b string) float64 {
	wa := normalize.Tokens(a)
	wb := normalize.Tokens(b)
	if len(wa) == 0 && len(wb) == 0 {
		return 1
	}
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	intersection := 0
	for w := range wa {
		if wb[w] {
			intersection++
		}
	}
	union := len(wa) + len(wb) - intersection
	return float64(intersection) / float64(union)
}

// orient normalizes both names and orders them by rune length. On a tie the
// second name is treated as the longer. same is true when the normalized
// names are equal, including both empty.
func orient(a, b string) (shorter, longer string, same bool) {
	a = normalize.CompanyKey(a)
	b = normalize.CompanyKey(b)
	if a == b {
		return a, b, true
	}
	if utf8.RuneCountInString(a) > utf8.RuneCountInString(b) {
		return b, a, false
	}
	return a, b, false
}

// sharedRunes counts the runes of shorter, with repetition, that occur
// somewhere in longer.
func sharedRunes(shorter, longer string) int {
	n := 0
	for _, r := range shorter {
		if strings.ContainsRune(longer, r) {
			n++
		}
	}
	return n
}
