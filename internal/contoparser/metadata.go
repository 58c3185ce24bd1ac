package contoparser

import (
	"regexp"
	"strings"

	"gestionale/estrazioni/internal/amountutils"
	"gestionale/estrazioni/internal/dateutils"
	"gestionale/estrazioni/internal/models"
)

var (
	ibanPattern    = regexp.MustCompile(`\bIT\d{2}[A-Z][0-9A-Z]{22}\b`)
	contoPattern   = regexp.MustCompile(`(?i)CONTO\s+(?:CORRENTE\s+)?(?:N\.?\s*|NUMERO\s+)([0-9/.-]{4,20})`)
	periodoPattern = regexp.MustCompile(`(?i)DAL\s+(\d{2}/\d{2}/\d{2,4})\s+AL\s+(\d{2}/\d{2}/\d{2,4})`)

	saldoInizialePattern = regexp.MustCompile(`(?i)SALDO\s+INIZIALE[^\d-]*(-?\d{1,3}(?:\.\d{3})*,\d{2}-?)`)
	saldoFinalePattern   = regexp.MustCompile(`(?i)SALDO\s+(?:FINALE|CONTABILE\s+FINALE)[^\d-]*(-?\d{1,3}(?:\.\d{3})*,\d{2}-?)`)
)

// ExtractMetadata recovers account identifiers, the statement period and the
// printed balances. Everything is optional: an absent field stays zero-valued.
func (e *Extractor) ExtractMetadata(text string) models.StatementMetadata {
	var meta models.StatementMetadata

	compact := strings.ReplaceAll(text, " ", " ")

	if m := ibanPattern.FindString(compact); m != "" {
		meta.IBAN = m
	}
	if m := contoPattern.FindStringSubmatch(compact); m != nil {
		meta.Account = strings.TrimSpace(m[1])
	}
	if m := periodoPattern.FindStringSubmatch(compact); m != nil {
		if d := dateutils.ParseDate(m[1]); dateutils.IsISO(d) {
			meta.PeriodFrom = d
		}
		if d := dateutils.ParseDate(m[2]); dateutils.IsISO(d) {
			meta.PeriodTo = d
		}
	}

	iniziale := saldoInizialePattern.FindStringSubmatch(compact)
	finale := saldoFinalePattern.FindStringSubmatch(compact)
	if iniziale != nil && finale != nil {
		meta.OpeningBalance = amountutils.ParseAmount(iniziale[1])
		meta.ClosingBalance = amountutils.ParseAmount(finale[1])
		meta.SaldiPresenti = true
	}

	return meta
}
