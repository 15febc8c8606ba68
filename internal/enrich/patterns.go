package enrich

import (
	"context"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrMissingCompany is returned when a lookup has no company name.
var ErrMissingCompany = eris.New("enrich: company name is required")

const linkedInCompanyURL = "https://www.linkedin.com/company/"

var (
	nonSlug      = regexp.MustCompile(`[^a-z0-9]`)
	domainPrefix = regexp.MustCompile(`(?i)^(https?://)?(www\.)?`)
)

// PatternFinder guesses contacts offline from the company name and domain:
// the LinkedIn company page URL and a generic info@ mailbox.
type PatternFinder struct{}

// FindContacts implements ContactFinder.
func (PatternFinder) FindContacts(_ context.Context, req ContactRequest) (*ContactResult, error) {
	if strings.TrimSpace(req.CompanyName) == "" {
		return nil, ErrMissingCompany
	}
	res := GuessContacts(req.CompanyName, req.Domain)
	return &res, nil
}

// GuessContacts derives likely contact channels. The LinkedIn slug is the
// lowercased name with every character outside [a-z0-9] replaced by '-'.
// The email is only guessed when a domain is known.
func GuessContacts(companyName, domain string) ContactResult {
	var res ContactResult
	if companyName != "" {
		res.LinkedIn = linkedInCompanyURL + nonSlug.ReplaceAllString(strings.ToLower(companyName), "-")
	}
	if host := bareDomain(domain); host != "" {
		res.Email = "info@" + host
	}
	return res
}

// bareDomain strips the scheme, a leading www. and any path.
func bareDomain(domain string) string {
	d := domainPrefix.ReplaceAllString(strings.TrimSpace(domain), "")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}
