// Package contactapi is a client for the enrich-contacts HTTP endpoint, which
// looks up a company's contact email and LinkedIn page.
package contactapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/resilience"
)

// Client looks up contacts for one company.
type Client interface {
	EnrichContacts(ctx context.Context, req Request) (*Contacts, error)
}

// Request is the body of POST /enrich-contacts.
type Request struct {
	CompanyName string `json:"companyName"`
	Domain      string `json:"domain,omitempty"`
}

// Contacts are the discovered contact channels. Either may be empty.
type Contacts struct {
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Response is the envelope returned by the endpoint.
type Response struct {
	Success bool      `json:"success"`
	Data    *Contacts `json:"data,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// StatusError is a non-200 reply.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("contactapi: unexpected status %d: %s", e.Status, e.Body)
}

// Transient reports whether the request may succeed if retried.
func (e *StatusError) Transient() bool {
	return resilience.TransientStatus(e.Status)
}

// Option configures the client.
type Option func(*httpClient)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithAPIKey sends key as a bearer token.
func WithAPIKey(key string) Option {
	return func(c *httpClient) {
		c.apiKey = key
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

type httpClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the endpoint rooted at baseURL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) EnrichContacts(ctx context.Context, req Request) (*Contacts, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, eris.Wrap(err, "contactapi: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/enrich-contacts", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "contactapi: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "contactapi: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "contactapi: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "contactapi: unmarshal response")
	}
	if !result.Success {
		return nil, eris.Errorf("contactapi: lookup failed: %s", result.Error)
	}
	if result.Data == nil {
		return &Contacts{}, nil
	}
	return result.Data, nil
}
