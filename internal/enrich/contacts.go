// Package enrich fills in missing contact details and secondary signals on
// scored leads.
package enrich

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/normalize"
)

// ContactRequest identifies the company to look up.
type ContactRequest struct {
	CompanyName string `json:"companyName"`
	Domain      string `json:"domain,omitempty"`
}

// ContactResult holds whatever contact channels were found. Either field may
// be empty.
type ContactResult struct {
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ContactFinder looks up contact details for a company.
type ContactFinder interface {
	FindContacts(ctx context.Context, req ContactRequest) (*ContactResult, error)
}

const (
	defaultConcurrency = 5
	defaultRatePerSec  = 10
)

// Enricher runs a ContactFinder over a batch of leads.
type Enricher struct {
	finder      ContactFinder
	concurrency int
	limiter     *rate.Limiter
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithConcurrency caps the number of lookups in flight.
func WithConcurrency(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithRateLimit caps lookups per second.
func WithRateLimit(perSec float64) Option {
	return func(e *Enricher) {
		if perSec > 0 {
			e.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
		}
	}
}

// NewEnricher returns an Enricher backed by finder.
func NewEnricher(finder ContactFinder, opts ...Option) *Enricher {
	e := &Enricher{
		finder:      finder,
		concurrency: defaultConcurrency,
		limiter:     rate.NewLimiter(defaultRatePerSec, 1),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// EnrichContacts looks up contacts for every lead missing an email or a
// LinkedIn URL and fills only the empty fields. A failed lookup is logged and
// leaves its lead unchanged. The result has the input's order and length;
// the input is not modified.
func (e *Enricher) EnrichContacts(ctx context.Context, leads []model.Lead) []model.Lead {
	out := make([]model.Lead, len(leads))
	for i, l := range leads {
		out[i] = l.Clone()
	}

	var g errgroup.Group
	g.SetLimit(e.concurrency)

	var enriched, failed atomic.Int64
	for i := range out {
		l := &out[i]
		if normalize.Present(l.Email) && normalize.Present(l.LinkedIn) {
			continue
		}

		g.Go(func() error {
			log := zap.L().With(zap.String("lead_id", l.ID), zap.String("company", l.CompanyName))

			if err := e.limiter.Wait(ctx); err != nil {
				log.Warn("enrich: rate limiter wait", zap.Error(err))
				failed.Add(1)
				return nil
			}

			res, err := e.finder.FindContacts(ctx, ContactRequest{CompanyName: l.CompanyName, Domain: l.Domain})
			if err != nil {
				log.Warn("enrich: contact lookup failed", zap.Error(err))
				failed.Add(1)
				return nil
			}
			if res == nil {
				return nil
			}

			if !normalize.Present(l.Email) && res.Email != "" {
				l.Email = res.Email
			}
			if !normalize.Present(l.LinkedIn) && res.LinkedIn != "" {
				l.LinkedIn = res.LinkedIn
			}
			enriched.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	zap.L().Info("enrich: contacts enriched",
		zap.Int("leads", len(leads)),
		zap.Int64("enriched", enriched.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return out
}
