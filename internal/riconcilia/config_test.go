package riconcilia

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTolerance(t *testing.T) {
	cfg := DefaultMatchingConfig()

	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		// 0.5% of 100 is 0.50: the floor wins
		{"Small amount uses floor", "100.00", "1"},
		// break-even at 200
		{"Break-even amount", "200.00", "1"},
		// 0.5% of 1200 is 6.00: the rate wins
		{"Large amount uses rate", "1200.00", "6"},
		{"Negative amount same band", "-1200.00", "6"},
		{"Zero amount still gets the floor", "0", "1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			assert.Equal(t, tc.expected, cfg.Tolerance(amount).String())
		})
	}
}
