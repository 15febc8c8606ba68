// Package scorer implements weighted multi-factor lead scoring.
package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Weights are the fixed contribution of each sub-score to lead_score.
// They sum to 1.0.
type Weights struct {
	Funding    float64 `yaml:"funding" json:"funding"`
	Hiring     float64 `yaml:"hiring" json:"hiring"`
	Revenue    float64 `yaml:"revenue" json:"revenue"`
	Size       float64 `yaml:"size" json:"size"`
	Confidence float64 `yaml:"confidence" json:"confidence"`
}

// DefaultWeights returns the business-scoring weight set.
func DefaultWeights() Weights {
	return Weights{
		Funding:    0.35,
		Hiring:     0.25,
		Revenue:    0.20,
		Size:       0.10,
		Confidence: 0.10,
	}
}

// aiWeights blend funding, hiring and size into the AI-adoption estimate.
// They differ from Weights on purpose: that score answers a different question.
var aiWeights = struct {
	Funding, Hiring, Size float64
}{Funding: 0.40, Hiring: 0.35, Size: 0.25}

// Sum returns the sum of all weights.
func (w Weights) Sum() float64 {
	return w.Funding + w.Hiring + w.Revenue + w.Size + w.Confidence
}

// ValidateWeights checks that a weight set is non-negative and sums to 1.
func ValidateWeights(w Weights) error {
	var errs []string

	for name, v := range map[string]float64{
		"funding":    w.Funding,
		"hiring":     w.Hiring,
		"revenue":    w.Revenue,
		"size":       w.Size,
		"confidence": w.Confidence,
	} {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("%s weight must be >= 0", name))
		}
	}

	if sum := w.Sum(); math.Abs(sum-1) > 1e-9 {
		errs = append(errs, fmt.Sprintf("weights should sum to 1, got %.4f", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: weight validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Thresholds documents every tier boundary the scorer applies. It is the
// structure printed by `leadrank score --explain-weights`.
type Thresholds struct {
	Weights    Weights            `yaml:"weights"`
	AIWeights  map[string]float64 `yaml:"ai_weights"`
	Hiring     []Tier             `yaml:"hiring"`
	Revenue    []Tier             `yaml:"revenue"`
	Size       []Tier             `yaml:"size"`
	Confidence map[string]float64 `yaml:"confidence_levels"`
	AI         map[string]float64 `yaml:"ai_potential_levels"`
}

// Explain returns the full scoring policy.
func Explain() Thresholds {
	return Thresholds{
		Weights: DefaultWeights(),
		AIWeights: map[string]float64{
			"funding": aiWeights.Funding,
			"hiring":  aiWeights.Hiring,
			"size":    aiWeights.Size,
		},
		Hiring:  hiringTiers,
		Revenue: revenueTiers,
		Size:    sizeTiers,
		Confidence: map[string]float64{
			"High":   confidenceHigh,
			"Medium": confidenceMedium,
		},
		AI: map[string]float64{
			"High":   aiHigh,
			"Medium": aiMedium,
		},
	}
}
