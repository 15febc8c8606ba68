// Package model defines the lead record shared by ingestion, scoring,
// deduplication, enrichment and export.
package model

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"time"
)

// ConfidenceLevel grades how complete the input data for a lead was.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "Low"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceHigh   ConfidenceLevel = "High"
)

// AIPotential estimates readiness for AI-related offerings.
type AIPotential string

const (
	AIPotentialLow    AIPotential = "Low"
	AIPotentialMedium AIPotential = "Medium"
	AIPotentialHigh   AIPotential = "High"
)

// Category is the size/stage bucket of a company.
type Category string

const (
	CategoryStartup    Category = "Startup"
	CategoryGrowth     Category = "Growth"
	CategoryEnterprise Category = "Enterprise"
)

// Freshness grades how recently a lead was enriched.
type Freshness string

const (
	FreshnessFresh    Freshness = "Fresh"
	FreshnessModerate Freshness = "Moderate"
	FreshnessStale    Freshness = "Stale"
)

// Velocity grades growth momentum from hiring and funding signals.
type Velocity string

const (
	VelocityLow    Velocity = "Low"
	VelocityMedium Velocity = "Medium"
	VelocityHigh   Velocity = "High"
)

// EmailValidation is the outcome of a syntactic email check.
type EmailValidation string

const (
	EmailValid   EmailValidation = "Valid"
	EmailInvalid EmailValidation = "Invalid"
	EmailUnknown EmailValidation = "Unknown"
)

// DomainStatus is the outcome of a domain liveness check.
type DomainStatus string

const (
	DomainActive   DomainStatus = "Active"
	DomainInactive DomainStatus = "Inactive"
	DomainUnknown  DomainStatus = "Unknown"
)

// Breakdown holds the per-dimension sub-scores, each in [0, 100].
type Breakdown struct {
	Funding    float64 `json:"funding"`
	Hiring     float64 `json:"hiring"`
	Revenue    float64 `json:"revenue"`
	Size       float64 `json:"size"`
	Confidence float64 `json:"confidence"`
}

// Map returns the breakdown keyed by sub-score name.
func (b Breakdown) Map() map[string]float64 {
	return map[string]float64{
		"funding":    b.Funding,
		"hiring":     b.Hiring,
		"revenue":    b.Revenue,
		"size":       b.Size,
		"confidence": b.Confidence,
	}
}

// Lead is one candidate company/contact record. Callers populate the identity,
// firmographic and signal fields; everything from LeadScore down is derived.
type Lead struct {
	ID            string  `json:"id"`
	CompanyName   string  `json:"company_name"`
	Domain        string  `json:"domain,omitempty"`
	Employees     Numeric `json:"employees,omitzero"`
	RevenueEst    Numeric `json:"revenue_est,omitzero"`
	Email         string  `json:"email,omitempty"`
	LinkedIn      string  `json:"linkedin,omitempty"`
	Jobs30d       Numeric `json:"jobs_30d,omitzero"`
	RecentFunding string  `json:"recent_funding,omitempty"`

	LeadScore       int             `json:"lead_score"`
	ConfidenceLevel ConfidenceLevel `json:"confidence_level,omitempty"`
	AIPotential     AIPotential     `json:"ai_potential,omitempty"`
	LeadCategory    Category        `json:"lead_category,omitempty"`
	Explanation     string          `json:"explanation,omitempty"`
	Breakdown       *Breakdown      `json:"breakdown,omitempty"`

	// Secondary signals, set by the advanced enrichment pass.
	EnrichmentDate   time.Time       `json:"enrichment_date,omitzero"`
	DataFreshness    Freshness       `json:"data_freshness,omitempty"`
	GrowthVelocity   Velocity        `json:"growth_velocity,omitempty"`
	CompanySignals   []string        `json:"company_signals,omitempty"`
	DataQualityScore *int            `json:"data_quality_score,omitempty"`
	TechStack        []string        `json:"tech_stack,omitempty"`
	EmailValidation  EmailValidation `json:"email_validation,omitempty"`
	DomainStatus     DomainStatus    `json:"domain_status,omitempty"`
	LastVerified     time.Time       `json:"last_verified,omitzero"`
}

// Scored reports whether the lead has been through the aggregator.
func (l *Lead) Scored() bool {
	return l.Breakdown != nil
}

// Clone returns a deep copy of the lead.
func (l Lead) Clone() Lead {
	c := l
	if l.Breakdown != nil {
		b := *l.Breakdown
		c.Breakdown = &b
	}
	if l.DataQualityScore != nil {
		q := *l.DataQualityScore
		c.DataQualityScore = &q
	}
	c.CompanySignals = slices.Clone(l.CompanySignals)
	c.TechStack = slices.Clone(l.TechStack)
	return c
}

// ClearSignals zeroes the secondary signals that are only ever computed:
// freshness, growth velocity, company signals, data quality, tech stack,
// email validation, domain status and verification time. EnrichmentDate is
// an input and is kept.
func (l *Lead) ClearSignals() {
	l.DataFreshness = ""
	l.GrowthVelocity = ""
	l.CompanySignals = nil
	l.DataQualityScore = nil
	l.TechStack = nil
	l.EmailValidation = ""
	l.DomainStatus = ""
	l.LastVerified = time.Time{}
}

// derivedFields mirrors the computed part of Lead for decoding.
type derivedFields struct {
	LeadScore        int             `json:"lead_score"`
	ConfidenceLevel  ConfidenceLevel `json:"confidence_level"`
	AIPotential      AIPotential     `json:"ai_potential"`
	LeadCategory     Category        `json:"lead_category"`
	Explanation      string          `json:"explanation"`
	Breakdown        *Breakdown      `json:"breakdown"`
	EnrichmentDate   time.Time       `json:"enrichment_date"`
	DataFreshness    Freshness       `json:"data_freshness"`
	GrowthVelocity   Velocity        `json:"growth_velocity"`
	CompanySignals   []string        `json:"company_signals"`
	DataQualityScore *int            `json:"data_quality_score"`
	TechStack        []string        `json:"tech_stack"`
	EmailValidation  EmailValidation `json:"email_validation"`
	DomainStatus     DomainStatus    `json:"domain_status"`
	LastVerified     time.Time       `json:"last_verified"`
}

// UnmarshalJSON decodes a lead leniently. Identity and signal fields may
// arrive as strings, numbers or null; unknown keys are ignored; a malformed
// derived field is dropped instead of failing the record. Only a document
// that is not a JSON object is an error.
func (l *Lead) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = Lead{
		ID:            lenientString(raw["id"]),
		CompanyName:   lenientString(raw["company_name"]),
		Domain:        lenientString(raw["domain"]),
		Email:         lenientString(raw["email"]),
		LinkedIn:      lenientString(raw["linkedin"]),
		RecentFunding: lenientString(raw["recent_funding"]),
	}
	for key, dst := range map[string]*Numeric{
		"employees":   &l.Employees,
		"revenue_est": &l.RevenueEst,
		"jobs_30d":    &l.Jobs30d,
	} {
		if v, ok := raw[key]; ok {
			_ = dst.UnmarshalJSON(v)
		}
	}

	var d derivedFields
	for key, v := range raw {
		// Decode one key at a time so a bad value only loses itself.
		single, _ := json.Marshal(map[string]json.RawMessage{key: v})
		_ = json.Unmarshal(single, &d)
	}
	l.LeadScore = d.LeadScore
	l.ConfidenceLevel = d.ConfidenceLevel
	l.AIPotential = d.AIPotential
	l.LeadCategory = d.LeadCategory
	l.Explanation = d.Explanation
	l.Breakdown = d.Breakdown
	l.EnrichmentDate = d.EnrichmentDate
	l.DataFreshness = d.DataFreshness
	l.GrowthVelocity = d.GrowthVelocity
	l.CompanySignals = d.CompanySignals
	l.DataQualityScore = d.DataQualityScore
	l.TechStack = d.TechStack
	l.EmailValidation = d.EmailValidation
	l.DomainStatus = d.DomainStatus
	l.LastVerified = d.LastVerified
	return nil
}

// lenientString returns a JSON string as-is and a JSON number in its literal
// form. Everything else yields "".
func lenientString(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return ""
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
		return ""
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}
