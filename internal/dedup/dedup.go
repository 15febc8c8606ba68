// Package dedup removes near-duplicate leads by fuzzy company-name matching.
package dedup

import (
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

// DefaultThreshold is the similarity a candidate must exceed to count as a
// duplicate of an already accepted lead.
const DefaultThreshold = 0.85

// Deduplicator keeps the first lead of each group of similarly named leads.
type Deduplicator struct {
	similarity Similarity
	threshold  float64
}

// Option configures a Deduplicator.
type Option func(*Deduplicator)

// WithSimilarity sets the name similarity metric. Nil is ignored.
func WithSimilarity(s Similarity) Option {
	return func(d *Deduplicator) {
		if s != nil {
			d.similarity = s
		}
	}
}

// WithThreshold sets the duplicate threshold.
func WithThreshold(t float64) Option {
	return func(d *Deduplicator) {
		d.threshold = t
	}
}

// New returns a Deduplicator using LengthCoverage and DefaultThreshold
// unless overridden.
func New(opts ...Option) *Deduplicator {
	d := &Deduplicator{
		similarity: LengthCoverage,
		threshold:  DefaultThreshold,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Deduplicate returns the leads that survive fuzzy name matching, in their
// original order. A lead is dropped when its name is blank or when its
// similarity to any previously kept name exceeds the threshold. The input is
// not modified and the result never aliases it.
func (d *Deduplicator) Deduplicate(leads []model.Lead) []model.Lead {
	out := make([]model.Lead, 0, len(leads))
	var seen []string

	for _, l := range leads {
		key := normalize.CompanyKey(l.CompanyName)
		if key == "" {
			continue
		}
		if d.matchesAny(key, seen) {
			continue
		}
		out = append(out, l.Clone())
		seen = append(seen, key)
	}
	return out
}

func (d *Deduplicator) matchesAny(key string, seen []string) bool {
	for _, s := range seen {
		if d.similarity(key, s) > d.threshold {
			return true
		}
	}
	return false
}

// Deduplicate applies LengthCoverage with DefaultThreshold.
func Deduplicate(leads []model.Lead) []model.Lead {
	return New().Deduplicate(leads)
}
