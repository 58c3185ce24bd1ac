// Package formatdetect inspects raw page text for layout fingerprints and
// returns the format tag used to select an extractor.
package formatdetect

import (
	"strings"

	"gestionale/estrazioni/internal/models"
)

// rule matches when every marker appears in the upper-cased text.
type rule struct {
	markers []string
	tag     models.FormatTag
}

// rules are evaluated top to bottom, first match wins. Ordering is a
// correctness invariant: a software variant must come before its generic
// parent marker, because the marker sets overlap (the plain "ZUCCHETTI"
// marker also appears in the spaced variant's pages).
var rules = []rule{
	// payroll software variants, most specific first
	{[]string{"Z U C C H E T T I"}, models.FormatBustaZucchetti},
	{[]string{"ZUCCHETTI"}, models.FormatBustaZucchetti},
	{[]string{"C.S.C.", "CEDOLINO"}, models.FormatBustaCSC},
	{[]string{"CSC", "CEDOLINO"}, models.FormatBustaCSC},
	{[]string{"CEDOLINO"}, models.FormatBustaGenerica},
	{[]string{"BUSTA PAGA"}, models.FormatBustaGenerica},
	{[]string{"NETTO DEL MESE"}, models.FormatBustaGenerica},
	{[]string{"NETTO A PAGARE"}, models.FormatBustaGenerica},

	// credit-card statements before current accounts: a card statement often
	// carries the issuing bank's name too
	{[]string{"NEXI"}, models.FormatCartaNexi},
	{[]string{"ESTRATTO CONTO CARTA"}, models.FormatCartaGenerica},
	{[]string{"CARTA DI CREDITO"}, models.FormatCartaGenerica},

	// bank current accounts
	{[]string{"INTESA SANPAOLO"}, models.FormatContoIntesa},
	{[]string{"BANCA INTESA"}, models.FormatContoIntesa},
	{[]string{"UNICREDIT"}, models.FormatContoUnicredit},
	{[]string{"ESTRATTO CONTO"}, models.FormatContoGenerico},
	{[]string{"SALDO INIZIALE", "SALDO FINALE"}, models.FormatContoGenerico},
}

// Detect returns the layout tag for the given text. Unrecognised text yields
// FormatGenerico, never a failure.
func Detect(rawText string) models.FormatTag {
	upper := strings.ToUpper(rawText)
	for _, r := range rules {
		if matchesAll(upper, r.markers) {
			return r.tag
		}
	}
	return models.FormatGenerico
}

func matchesAll(upper string, markers []string) bool {
	for _, m := range markers {
		if !strings.Contains(upper, m) {
			return false
		}
	}
	return true
}
