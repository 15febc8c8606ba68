package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var entitySuffix = regexp.MustCompile(
	`\s+(llc|l l c|inc|incorporated|corp|corporation|co|company|ltd|limited|` +
		`lp|l p|llp|l l p|pllc|pc|p c|gmbh|plc|dba|d b a)$`)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// CompanyKey is the deduplication key of a company name: lowercased and
// trimmed, nothing else.
func CompanyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CanonicalName folds a company name for token-based matching: accents
// removed, lowercased, punctuation turned into spaces, trailing legal-entity
// suffixes stripped and whitespace collapsed. "Café Labs, Inc." becomes
// "cafe labs".
func CanonicalName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	folded = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case r == '&':
			return r
		default:
			return ' '
		}
	}, folded)
	folded = strings.TrimSpace(multiSpace.ReplaceAllString(folded, " "))

	// Strip repeatedly: "acme holdings co ltd" carries two suffixes.
	for {
		stripped := entitySuffix.ReplaceAllString(folded, "")
		if stripped == folded {
			break
		}
		folded = strings.TrimSpace(stripped)
	}
	return folded
}

// Tokens splits a canonical name into its distinct words.
func Tokens(name string) map[string]bool {
	words := strings.Fields(CanonicalName(name))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
