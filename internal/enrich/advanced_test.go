package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadrank/internal/model"
)

func TestDetectTechStack(t *testing.T) {
	tests := []struct {
		domain string
		want   []string
	}{
		{"", nil},
		{"acme.ai", []string{"AI/ML", "Python", "TensorFlow", "AWS", "Docker"}},
		{"beta.io", []string{"Node.js", "React", "MongoDB", "Kubernetes"}},
		{"gamma.com", []string{"JavaScript", "AWS", "PostgreSQL"}},
		{"delta.co", []string{"Ruby on Rails", "Redis", "Heroku"}},
		{"epsilon.co.uk", []string{"Ruby on Rails", "Redis", "Heroku"}},
		{"zeta.org", []string{"JavaScript", "Cloud Hosting"}},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTechStack(tt.domain))
		})
	}
}

func TestDetectTechStack_ReturnsCopy(t *testing.T) {
	a := DetectTechStack("x.org")
	a[0] = "COBOL"
	assert.Equal(t, "JavaScript", DetectTechStack("y.org")[0])
}

func TestValidateEmail(t *testing.T) {
	assert.Equal(t, model.EmailUnknown, ValidateEmail(""))
	assert.Equal(t, model.EmailUnknown, ValidateEmail("   "))
	assert.Equal(t, model.EmailValid, ValidateEmail("info@acme.io"))
	assert.Equal(t, model.EmailInvalid, ValidateEmail("not-an-email"))
	assert.Equal(t, model.EmailInvalid, ValidateEmail("a b@acme.io"))
}

func TestCheckDomainStatus(t *testing.T) {
	assert.Equal(t, model.DomainUnknown, CheckDomainStatus(""))
	assert.Equal(t, model.DomainActive, CheckDomainStatus("acme.io"))
}

func TestAdvanced(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	in := model.Lead{
		CompanyName:   "Acme",
		Domain:        "acme.ai",
		Email:         "info@acme.ai",
		Jobs30d:       model.NumberValue(6),
		RecentFunding: "Series A",
	}

	got := Advanced(in, now)

	assert.Equal(t, []string{"AI/ML", "Python", "TensorFlow", "AWS", "Docker"}, got.TechStack)
	assert.Equal(t, model.EmailValid, got.EmailValidation)
	assert.Equal(t, model.DomainActive, got.DomainStatus)
	assert.Equal(t, model.VelocityHigh, got.GrowthVelocity)
	assert.Equal(t, now, got.LastVerified)
	require.NotNil(t, got.DataQualityScore)
	assert.Nil(t, in.TechStack)
}

func TestAdvancedBatch(t *testing.T) {
	now := time.Now()
	got := AdvancedBatch([]model.Lead{{CompanyName: "A"}, {CompanyName: "B", Domain: "b.io"}}, now)

	require.Len(t, got, 2)
	assert.Nil(t, got[0].TechStack)
	assert.Equal(t, model.DomainUnknown, got[0].DomainStatus)
	assert.Equal(t, model.DomainActive, got[1].DomainStatus)
}
