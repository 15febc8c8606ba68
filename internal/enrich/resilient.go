package enrich

import (
	"context"
	"time"

	"github.com/sells-group/leadrank/internal/config"
	"github.com/sells-group/leadrank/internal/resilience"
	"github.com/sells-group/leadrank/pkg/contactapi"
)

// ResilientFinder calls the remote contact API with retries on transient
// failures, behind a circuit breaker.
type ResilientFinder struct {
	client  contactapi.Client
	retry   resilience.RetryPolicy
	breaker *resilience.Breaker
}

// NewResilientFinder wraps client.
func NewResilientFinder(client contactapi.Client, retry resilience.RetryPolicy, breaker *resilience.Breaker) *ResilientFinder {
	return &ResilientFinder{client: client, retry: retry, breaker: breaker}
}

// FindContacts implements ContactFinder.
func (f *ResilientFinder) FindContacts(ctx context.Context, req ContactRequest) (*ContactResult, error) {
	if req.CompanyName == "" {
		return nil, ErrMissingCompany
	}

	contacts, err := resilience.Guard(ctx, f.breaker, func(ctx context.Context) (*contactapi.Contacts, error) {
		return resilience.Retry(ctx, f.retry, "contactapi.enrich_contacts", func(ctx context.Context) (*contactapi.Contacts, error) {
			return f.client.EnrichContacts(ctx, contactapi.Request{CompanyName: req.CompanyName, Domain: req.Domain})
		})
	})
	if err != nil {
		return nil, err
	}
	return &ContactResult{Email: contacts.Email, LinkedIn: contacts.LinkedIn}, nil
}

// NewFinder builds the ContactFinder described by cfg: the remote API when a
// base URL is configured and offline is false, the local pattern guesser
// otherwise. With cfg.Fallback the remote API is cascaded into the guesser.
func NewFinder(cfg config.EnrichConfig, offline bool) ContactFinder {
	if offline || cfg.BaseURL == "" {
		return PatternFinder{}
	}

	client := contactapi.NewClient(cfg.BaseURL,
		contactapi.WithAPIKey(cfg.APIKey),
		contactapi.WithTimeout(cfg.Timeout()),
	)
	retry := resilience.NewRetryPolicy(cfg.Retry.MaxAttempts, time.Duration(cfg.Retry.InitialBackoffMs)*time.Millisecond)
	breaker := resilience.NewBreaker("contactapi", cfg.Circuit.FailureThreshold, time.Duration(cfg.Circuit.ResetTimeoutSecs)*time.Second)
	remote := NewResilientFinder(client, retry, breaker)
	if cfg.Fallback {
		return NewWaterfall(remote, PatternFinder{})
	}
	return remote
}

// NewEnricherFromConfig returns an Enricher over NewFinder(cfg, offline).
func NewEnricherFromConfig(cfg config.EnrichConfig, offline bool) *Enricher {
	return NewEnricher(NewFinder(cfg, offline),
		WithConcurrency(cfg.Concurrency),
		WithRateLimit(cfg.RatePerSec),
	)
}
