// Package quote estimates insurance premiums for the customer-facing quote
// form and lists the coverage tiers offered per policy type.
package quote

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrMissingFields     = errors.New("please fill in all required fields")
	ErrUnknownPolicyType = errors.New("unknown policy type")
)

var baseRates = map[string]float64{
	"health": 0.003,
	"life":   0.002,
	"motor":  0.004,
	"home":   0.0015,
	"travel": 0.005,
}

type bounds struct{ min, max float64 }

var coverageBounds = map[string]bounds{
	"health": {500_000, 10_000_000},
	"life":   {1_000_000, 50_000_000},
	"motor":  {500_000, 20_000_000},
	"home":   {1_000_000, 100_000_000},
	"travel": {100_000, 5_000_000},
}

var defaultBounds = bounds{500_000, 10_000_000}

// PolicyTypes lists the supported policy types.
func PolicyTypes() []string {
	return []string{"health", "life", "motor", "home", "travel"}
}

// Request is the quote form. Zero values count as missing.
type Request struct {
	PolicyType string
	Coverage   float64
	TermYears  int
	Age        int
}

// Quote is a calculated premium.
type Quote struct {
	PolicyType string
	Coverage   float64
	Premium    float64
}

// Label is e.g. "Health Insurance".
func (q Quote) Label() string {
	if q.PolicyType == "" {
		return ""
	}
	return strings.ToUpper(q.PolicyType[:1]) + q.PolicyType[1:] + " Insurance"
}

// RoundedPremium is the premium rounded to whole rupees.
func (q Quote) RoundedPremium() int64 {
	return int64(math.Round(q.Premium))
}

// Calculate returns coverage × base rate × age multiplier × term multiplier.
// Applicants older than 45 pay 1.5×; terms longer than one year multiply by
// term × 0.9.
func Calculate(req Request) (Quote, error) {
	pt := strings.ToLower(strings.TrimSpace(req.PolicyType))
	if pt == "" || req.Coverage <= 0 || req.TermYears <= 0 || req.Age <= 0 {
		return Quote{}, ErrMissingFields
	}
	rate, ok := baseRates[pt]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrUnknownPolicyType, req.PolicyType)
	}

	ageMult := 1.0
	if req.Age > 45 {
		ageMult = 1.5
	}
	termMult := 1.0
	if req.TermYears > 1 {
		termMult = float64(req.TermYears) * 0.9
	}

	return Quote{
		PolicyType: pt,
		Coverage:   req.Coverage,
		Premium:    req.Coverage * rate * ageMult * termMult,
	}, nil
}

// Option is one selectable coverage amount.
type Option struct {
	Label  string
	Amount float64
}

// Text renders the option as "Basic - ₹5 Lakhs".
func (o Option) Text() string {
	return fmt.Sprintf("%s - ₹%.0f Lakhs", o.Label, o.Amount/100_000)
}

var tierLabels = []string{"Basic", "Standard", "Premium", "Super Premium", "Maximum"}

// CoverageOptions returns the five tiers for policyType: min, 2×min, 5×min,
// 10×min and max. Unknown types use the health bounds.
func CoverageOptions(policyType string) []Option {
	b, ok := coverageBounds[strings.ToLower(policyType)]
	if !ok {
		b = defaultBounds
	}
	amounts := []float64{b.min, b.min * 2, b.min * 5, b.min * 10, b.max}

	out := make([]Option, len(amounts))
	for i, a := range amounts {
		out[i] = Option{Label: tierLabels[i], Amount: a}
	}
	return out
}
