// Package riconcilia matches tax filings against bank movements under
// monetary tolerance and drives the filing lifecycle off the match outcomes.
package riconcilia

import (
	"github.com/shopspring/decimal"
)

// MatchingConfig carries the policy constants of the engine. The values are
// empirically chosen, not derived; they are kept configurable on purpose.
type MatchingConfig struct {
	// ToleranceFloor is the fixed monetary floor of the match tolerance.
	// A pure percentage is too tight for small amounts.
	ToleranceFloor decimal.Decimal

	// ToleranceRate is the percentage component. A pure fixed floor is too
	// loose for large amounts.
	ToleranceRate decimal.Decimal

	// LookAheadDays bounds the IN_SCADENZA alert window.
	LookAheadDays int

	// OverlapThreshold is the amendment-correlation base-code share.
	OverlapThreshold float64
}

// DefaultMatchingConfig returns the shipped policy values.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		ToleranceFloor:   decimal.NewFromFloat(1.00),
		ToleranceRate:    decimal.NewFromFloat(0.005),
		LookAheadDays:    7,
		OverlapThreshold: 0.5,
	}
}

// Tolerance computes the acceptance band for a filing amount:
// max(floor, amount * rate).
func (c MatchingConfig) Tolerance(amount decimal.Decimal) decimal.Decimal {
	scaled := amount.Abs().Mul(c.ToleranceRate)
	if scaled.LessThan(c.ToleranceFloor) {
		return c.ToleranceFloor
	}
	return scaled
}
