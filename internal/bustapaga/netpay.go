package bustapaga

import (
	"regexp"

	"github.com/shopspring/decimal"

	"gestionale/estrazioni/internal/amountutils"
	"gestionale/estrazioni/internal/models"
)

// NetPayBounds are the plausibility limits of the last-resort net-pay
// heuristic: amounts outside [Min, Max] are never taken as the net figure.
type NetPayBounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// DefaultNetPayBounds returns the shipped limits for an ordinary salary.
func DefaultNetPayBounds() NetPayBounds {
	return NetPayBounds{
		Min: decimal.NewFromInt(200),
		Max: decimal.NewFromInt(10000),
	}
}

func (b NetPayBounds) valid() bool {
	return b.Min.IsPositive() && b.Max.GreaterThan(b.Min)
}

var (
	nettoEtichettaPattern = regexp.MustCompile(`(?i)NETTO\s+(?:DEL\s+MESE|A\s+PAGARE|IN\s+BUSTA)\D{0,20}(\d{1,3}(?:\.\d{3})*,\d{2})`)
	nettoSuffissoPattern  = regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*,\d{2})\+`)
)

// extractNetPay runs the net-pay fallback chain and reports which rule fired:
// a labelled total line, then a trailing +-suffixed amount (some layouts mark
// the final paid figure that way), then the last amount within the extractor's
// plausibility bounds. The rule name is the record's confidence tier.
func (e *Extractor) extractNetPay(text string) (decimal.Decimal, models.NetPayRule, bool) {
	if m := nettoEtichettaPattern.FindStringSubmatch(text); m != nil {
		if d := amountutils.ParseAmount(m[1]); !d.IsZero() {
			return d, models.NetPayEtichetta, true
		}
	}

	if ms := nettoSuffissoPattern.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		last := ms[len(ms)-1]
		if d := amountutils.ParseAmount(last[1]); !d.IsZero() {
			return d, models.NetPaySuffisso, true
		}
	}

	var candidate decimal.Decimal
	found := false
	for _, m := range importoPattern.FindAllString(text, -1) {
		d := amountutils.ParseAmount(m)
		if d.GreaterThanOrEqual(e.bounds.Min) && d.LessThanOrEqual(e.bounds.Max) {
			candidate = d
			found = true
		}
	}
	if found {
		return candidate, models.NetPayEuristica, true
	}

	return decimal.Zero, "", false
}
