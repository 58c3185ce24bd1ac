package riconcilia

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestionale/estrazioni/internal/config"
)

func TestConfigFrom(t *testing.T) {
	c := &config.Config{}
	c.Riconciliazione.TolleranzaMinima = 2.0
	c.Riconciliazione.TolleranzaPercentuale = 0.01
	c.Riconciliazione.GiorniPreavviso = 10
	c.Riconciliazione.SogliaCorrelazione = 0.6

	m := ConfigFrom(c)
	assert.Equal(t, "2", m.ToleranceFloor.String())
	assert.Equal(t, "0.01", m.ToleranceRate.String())
	assert.Equal(t, 10, m.LookAheadDays)
	assert.Equal(t, 0.6, m.OverlapThreshold)
}

func TestConfigFromNilFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, DefaultMatchingConfig(), ConfigFrom(nil))
}
