package riconcilia

import (
	"github.com/shopspring/decimal"

	"gestionale/estrazioni/internal/config"
)

// ConfigFrom maps the application configuration onto a MatchingConfig.
func ConfigFrom(c *config.Config) MatchingConfig {
	if c == nil {
		return DefaultMatchingConfig()
	}
	return MatchingConfig{
		ToleranceFloor:   decimal.NewFromFloat(c.Riconciliazione.TolleranzaMinima),
		ToleranceRate:    decimal.NewFromFloat(c.Riconciliazione.TolleranzaPercentuale),
		LookAheadDays:    c.Riconciliazione.GiorniPreavviso,
		OverlapThreshold: c.Riconciliazione.SogliaCorrelazione,
	}
}
