package tabelle

import (
	"strings"

	"gestionale/estrazioni/internal/models"
)

// ResolveDirection determines the flow of a bank transaction.
//
// Policy, in order of reliability:
//  1. keyword evidence in the description (wins over the causale table,
//     the actual wording is more trustworthy than a generic code mapping)
//  2. the causale-code table default
//
// Returns DirectionUnknown when neither rule fires; the caller must drop the
// record rather than guess a sign.
func (t *Tables) ResolveDirection(causale, description string) models.Direction {
	if dir := t.directionFromKeywords(description); dir != models.DirectionUnknown {
		return dir
	}
	return t.DirectionForCausale(causale)
}

func (t *Tables) directionFromKeywords(description string) models.Direction {
	upper := strings.ToUpper(description)

	// longest keyword wins so "BONIFICO A VOSTRO FAVORE" beats "PAGAMENTO"
	// appearing elsewhere in the same description
	best := models.DirectionUnknown
	bestLen := 0
	for _, kw := range t.KeywordsEntrata {
		if strings.Contains(upper, kw) && len(kw) > bestLen {
			best = models.DirectionEntrata
			bestLen = len(kw)
		}
	}
	for _, kw := range t.KeywordsUscita {
		if strings.Contains(upper, kw) && len(kw) > bestLen {
			best = models.DirectionUscita
			bestLen = len(kw)
		}
	}
	return best
}
