// Package cartaparser extracts transactions from credit-card statement text.
// Card rows are purchases by default, so the sign policy differs from the
// current-account one: outflow is the default direction and only explicit
// credit wording flips a row to inflow.
package cartaparser

import (
	"regexp"
	"strings"

	"gestionale/estrazioni/internal/amountutils"
	"gestionale/estrazioni/internal/dateutils"
	"gestionale/estrazioni/internal/logging"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/tabelle"
)

// Extractor parses one credit-card statement format.
type Extractor struct {
	tag    models.FormatTag
	tables *tabelle.Tables
	logger logging.Logger
}

// New creates an extractor for the given credit-card format tag.
func New(tag models.FormatTag, tables *tabelle.Tables, logger logging.Logger) *Extractor {
	if tables == nil {
		tables = tabelle.Default()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{tag: tag, tables: tables, logger: logger}
}

var (
	// operation date, optional booking date, merchant, amount
	rigaCompleta = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2,4})\s+(\d{2}/\d{2}/\d{2,4})\s+(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*€?\s*$`)
	rigaSingola  = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2,4})\s+(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s*€?\s*$`)

	cartaPattern    = regexp.MustCompile(`(?:(?:\d{4}|[X*]{4})\s*){3}(\d{4})`)
	titolarePattern = regexp.MustCompile(`(?i)TITOLARE\s*:?\s+([A-ZÀ-Ù' ]{4,40})`)
)

// credit wording on a card statement: the monthly settlement and refunds
var accreditiCarta = []string{
	"ACCREDITO",
	"PAGAMENTO SALDO",
	"ADDEBITO SU CONTO CORRENTE",
	"RIMBORSO",
	"STORNO",
}

// ExtractTransactions recovers the card movements. Purchases come out
// negative; settlement and refund rows come out positive.
func (e *Extractor) ExtractTransactions(text string) []models.ExtractedTransaction {
	var txs []models.ExtractedTransaction

	for _, pattern := range []*regexp.Regexp{rigaCompleta, rigaSingola} {
		txs = e.extractWith(text, pattern)
		if len(txs) > 0 {
			break
		}
	}
	return txs
}

func (e *Extractor) extractWith(text string, pattern *regexp.Regexp) []models.ExtractedTransaction {
	var txs []models.ExtractedTransaction

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isRigaTotale(line) {
			continue
		}
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		date := dateutils.ParseDate(m[1])
		if !dateutils.IsISO(date) {
			continue
		}

		desc := m[2]
		amountIdx := 3
		valueDate := ""
		if pattern == rigaCompleta {
			if vd := dateutils.ParseDate(m[2]); dateutils.IsISO(vd) {
				valueDate = vd
			}
			desc = m[3]
			amountIdx = 4
		}

		amount := amountutils.ParseAmount(m[amountIdx]).Abs()
		if amount.IsZero() {
			continue
		}

		// outflow unless the row is an explicit credit
		if !isAccredito(desc) {
			amount = amount.Neg()
		}

		txs = append(txs, models.ExtractedTransaction{
			Date:         date,
			ValueDate:    valueDate,
			Description:  strings.TrimSpace(desc),
			Amount:       amount,
			SourceFormat: e.tag,
		})
	}
	return txs
}

func isAccredito(desc string) bool {
	upper := strings.ToUpper(desc)
	for _, kw := range accreditiCarta {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

func isRigaTotale(line string) bool {
	upper := strings.ToUpper(line)
	return strings.Contains(upper, "TOTALE") ||
		strings.Contains(upper, "SALDO PRECEDENTE") ||
		strings.Contains(upper, "MASSIMALE")
}

// ExtractMetadata recovers the masked card number and the card holder.
func (e *Extractor) ExtractMetadata(text string) models.StatementMetadata {
	var meta models.StatementMetadata

	if m := cartaPattern.FindStringSubmatch(text); m != nil {
		meta.CardNumber = "**** " + m[1]
	}
	if m := titolarePattern.FindStringSubmatch(text); m != nil {
		meta.Account = strings.TrimSpace(m[1])
	}
	return meta
}
