package enrich

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/scorer"
)

var validate = validator.New()

// techPatterns are checked in order; the first domain substring match wins.
var techPatterns = []struct {
	pattern string
	stack   []string
}{
	{".ai", []string{"AI/ML", "Python", "TensorFlow", "AWS", "Docker"}},
	{".io", []string{"Node.js", "React", "MongoDB", "Kubernetes"}},
	{".com", []string{"JavaScript", "AWS", "PostgreSQL"}},
	{".co", []string{"Ruby on Rails", "Redis", "Heroku"}},
}

var defaultTechStack = []string{"JavaScript", "Cloud Hosting"}

// DetectTechStack infers a likely technology stack from the domain's
// suffix. It is a heuristic, not a scan.
func DetectTechStack(domain string) []string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil
	}
	for _, p := range techPatterns {
		if strings.Contains(domain, p.pattern) {
			return append([]string(nil), p.stack...)
		}
	}
	return append([]string(nil), defaultTechStack...)
}

// ValidateEmail checks email syntax only. No mailbox is contacted.
func ValidateEmail(email string) model.EmailValidation {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.EmailUnknown
	}
	if err := validate.Var(email, "email"); err != nil {
		return model.EmailInvalid
	}
	return model.EmailValid
}

// CheckDomainStatus reports any non-empty domain as active. No DNS lookup is
// made.
func CheckDomainStatus(domain string) model.DomainStatus {
	if strings.TrimSpace(domain) == "" {
		return model.DomainUnknown
	}
	return model.DomainActive
}

// Advanced returns a copy of l with secondary signals, tech stack, email
// validation and domain status set.
func Advanced(l model.Lead, now time.Time) model.Lead {
	out := scorer.ApplySignals(l, now)
	out.TechStack = DetectTechStack(l.Domain)
	out.EmailValidation = ValidateEmail(l.Email)
	out.DomainStatus = CheckDomainStatus(l.Domain)
	return out
}

// AdvancedBatch applies Advanced to every lead.
func AdvancedBatch(leads []model.Lead, now time.Time) []model.Lead {
	out := make([]model.Lead, len(leads))
	for i, l := range leads {
		out[i] = Advanced(l, now)
	}
	return out
}
