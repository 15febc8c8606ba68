// Package pipeline composes deduplication and scoring into a ranked lead list.
package pipeline

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/dedup"
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/scorer"
)

// Engine runs dedup, scoring and ranking over a batch of leads.
type Engine struct {
	dedup *dedup.Deduplicator
	clock func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithDeduplicator replaces the default deduplicator. Nil is ignored.
func WithDeduplicator(d *dedup.Deduplicator) Option {
	return func(e *Engine) {
		if d != nil {
			e.dedup = d
		}
	}
}

// WithSignals makes Run attach secondary signals to every scored lead, using
// clock for the verification timestamp.
func WithSignals(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// NewEngine returns an Engine with the default deduplicator.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{dedup: dedup.New()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run deduplicates leads, scores every survivor and returns them sorted by
// lead_score descending. Leads with equal scores keep their post-dedup
// order. The input is not modified.
func (e *Engine) Run(leads []model.Lead) []model.Lead {
	unique := e.dedup.Deduplicate(leads)

	var now time.Time
	if e.clock != nil {
		now = e.clock()
	}

	scored := make([]model.Lead, len(unique))
	for i, l := range unique {
		s := scorer.ScoreLead(l)
		if e.clock != nil {
			s = scorer.ApplySignals(s, now)
		}
		scored[i] = s
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].LeadScore > scored[j].LeadScore
	})

	zap.L().Debug("pipeline: scored leads",
		zap.Int("input", len(leads)),
		zap.Int("unique", len(unique)),
		zap.Int("dropped", len(leads)-len(unique)),
	)
	return scored
}

// ScoreAndDeduplicate runs the default Engine.
func ScoreAndDeduplicate(leads []model.Lead) []model.Lead {
	return NewEngine().Run(leads)
}
