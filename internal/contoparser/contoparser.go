// Package contoparser extracts transactions from current-account statement
// text. The supported banks print the same logical columns with minor
// ordering and spacing differences across statement periods, so each format
// carries a primary pattern plus looser fallbacks tried only when the primary
// yields nothing.
package contoparser

import (
	"regexp"
	"strings"

	"gestionale/estrazioni/internal/amountutils"
	"gestionale/estrazioni/internal/dateutils"
	"gestionale/estrazioni/internal/logging"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/tabelle"
)

// Extractor parses one current-account statement format.
type Extractor struct {
	tag    models.FormatTag
	tables *tabelle.Tables
	logger logging.Logger
}

// New creates an extractor for the given current-account format tag.
func New(tag models.FormatTag, tables *tabelle.Tables, logger logging.Logger) *Extractor {
	if tables == nil {
		tables = tabelle.Default()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{tag: tag, tables: tables, logger: logger}
}

// linePattern couples a compiled regex with the meaning of its groups.
type linePattern struct {
	re *regexp.Regexp
	// group indexes, 0 = absent
	date      int
	valueDate int
	causale   int
	desc      int
	amount    int
	sign      int
}

var (
	// full row: booking date, value date, causale code, description, amount
	patternCompleto = linePattern{
		re:   regexp.MustCompile(`^(\d{2}/\d{2}/\d{2,4})\s+(\d{2}/\d{2}/\d{2,4})\s+(\d{1,3}|[A-Z]\d)\s+(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*€?\s*$`),
		date: 1, valueDate: 2, causale: 3, desc: 4, amount: 5,
	}
	// single date, no causale column, optional trailing sign
	patternSenzaCausale = linePattern{
		re:   regexp.MustCompile(`^(\d{2}/\d{2}/\d{2,4})\s+(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*([+-])?\s*€?\s*$`),
		date: 1, desc: 2, amount: 3, sign: 4,
	}
	// dotted dates, seen on older Intesa layouts
	patternDatePuntate = linePattern{
		re:   regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{2,4})\s+(\d{2}\.\d{2}\.\d{2,4})?\s*(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*([+-])?\s*$`),
		date: 1, valueDate: 2, desc: 3, amount: 4, sign: 5,
	}
)

// chainFor returns the pattern fallback chain for the extractor's format.
// The first pattern producing at least one record wins.
func (e *Extractor) chainFor() []linePattern {
	switch e.tag {
	case models.FormatContoIntesa:
		return []linePattern{patternCompleto, patternDatePuntate, patternSenzaCausale}
	case models.FormatContoUnicredit:
		return []linePattern{patternCompleto, patternSenzaCausale}
	default:
		return []linePattern{patternCompleto, patternSenzaCausale, patternDatePuntate}
	}
}

// ExtractTransactions recovers the statement's movements. Records whose
// direction cannot be determined are dropped, never guessed.
func (e *Extractor) ExtractTransactions(text string) []models.ExtractedTransaction {
	lines := strings.Split(text, "\n")

	for _, p := range e.chainFor() {
		txs := e.extractWithPattern(lines, p)
		if len(txs) > 0 {
			return txs
		}
	}
	return nil
}

func (e *Extractor) extractWithPattern(lines []string, p linePattern) []models.ExtractedTransaction {
	var txs []models.ExtractedTransaction

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || isNonTransactionLine(line) {
			continue
		}
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		date := dateutils.ParseDate(m[p.date])
		if !dateutils.IsISO(date) {
			continue
		}

		tx := models.ExtractedTransaction{
			Date:         date,
			Description:  strings.TrimSpace(m[p.desc]),
			Amount:       amountutils.ParseAmount(m[p.amount]),
			SourceFormat: e.tag,
		}
		if tx.Amount.IsZero() {
			continue
		}
		if p.valueDate > 0 && m[p.valueDate] != "" {
			if vd := dateutils.ParseDate(m[p.valueDate]); dateutils.IsISO(vd) {
				tx.ValueDate = vd
			}
		}
		if p.causale > 0 {
			tx.CategoryCode = m[p.causale]
		}

		dir := e.resolveDirection(p, m, tx)
		if dir == models.DirectionUnknown {
			e.logger.Debug("Dropping transaction with undetermined direction",
				logging.Field{Key: logging.FieldReason, Value: "nessuna direzione"},
				logging.Field{Key: "linea", Value: line})
			continue
		}
		if dir == models.DirectionUscita {
			tx.Amount = tx.Amount.Abs().Neg()
		} else {
			tx.Amount = tx.Amount.Abs()
		}

		txs = append(txs, tx)
	}
	return txs
}

// resolveDirection applies the sign policy: an explicit sign printed next to
// the amount is layout evidence and wins outright; otherwise description
// keywords override the causale table.
func (e *Extractor) resolveDirection(p linePattern, m []string, tx models.ExtractedTransaction) models.Direction {
	if p.sign > 0 && m[p.sign] != "" {
		if m[p.sign] == "-" {
			return models.DirectionUscita
		}
		return models.DirectionEntrata
	}
	return e.tables.ResolveDirection(tx.CategoryCode, tx.Description)
}

var nonTransactionMarkers = []string{
	"SALDO INIZIALE",
	"SALDO FINALE",
	"SALDO CONTABILE",
	"DATA CONTABILE",
	"DATA VALUTA",
	"TOTALE",
	"PAGINA",
}

func isNonTransactionLine(line string) bool {
	upper := strings.ToUpper(line)
	for _, marker := range nonTransactionMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
