// Package estrazione assembles per-page extraction output into the
// document-level result. It owns the success/partial semantics: an unreadable
// document fails, a readable one with zero records does not.
package estrazione

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"gestionale/estrazioni/internal/bustapaga"
	"gestionale/estrazioni/internal/formatdetect"
	"gestionale/estrazioni/internal/logging"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/parser"
	"gestionale/estrazioni/internal/tabelle"
)

// saldoTolleranza is the cross-check slack between the computed transaction
// sum and the printed balance delta: one cent.
var saldoTolleranza = decimal.New(1, -2)

// Assembler runs the full extraction pipeline over a document's pages.
// It holds no mutable state across invocations; a zero-dependency caller can
// share one instance between goroutines.
type Assembler struct {
	tables *tabelle.Tables
	netPay bustapaga.NetPayBounds
	logger logging.Logger
}

// NewAssembler creates an assembler. Nil arguments fall back to the defaults.
func NewAssembler(tables *tabelle.Tables, logger logging.Logger) *Assembler {
	if tables == nil {
		tables = tabelle.Default()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Assembler{tables: tables, netPay: bustapaga.DefaultNetPayBounds(), logger: logger}
}

// SetNetPayBounds overrides the payslip net-pay plausibility limits, typically
// with the configured values.
func (a *Assembler) SetNetPayBounds(min, max decimal.Decimal) {
	a.netPay = bustapaga.NetPayBounds{Min: min, Max: max}
}

// Estrai processes a document's pages and always returns a result object,
// never an error for malformed content. Success is false only when no page
// carries any recognisable text at all.
func (a *Assembler) Estrai(pages []models.RawPage) models.DocumentExtractionResult {
	fullText := joinPages(pages)
	if strings.TrimSpace(fullText) == "" {
		return models.DocumentExtractionResult{
			Success:      false,
			Error:        "documento illeggibile: nessun testo estraibile",
			DocumentKind: models.KindSconosciuto,
			Format:       models.FormatGenerico,
		}
	}

	docTag := formatdetect.Detect(fullText)
	a.logger.Info("Detected document format",
		logging.Field{Key: logging.FieldFormat, Value: string(docTag)},
		logging.Field{Key: logging.FieldCount, Value: len(pages)})

	if docTag.IsBusta() {
		return a.assemblePayslips(pages, docTag)
	}
	return a.assembleStatement(pages, fullText, docTag)
}

// assembleStatement dispatches each page to a statement extractor. A document
// can mix sections (the fee pages of an account statement detect differently),
// so detection runs per page and falls back to the document tag.
func (a *Assembler) assembleStatement(pages []models.RawPage, fullText string, docTag models.FormatTag) models.DocumentExtractionResult {
	result := models.DocumentExtractionResult{
		Success: true,
		Format:  docTag,
	}

	switch {
	case docTag.IsCarta():
		result.DocumentKind = models.KindEstrattoCarta
	default:
		result.DocumentKind = models.KindEstrattoConto
	}

	metaExtractor, ok := parser.StatementFor(docTag, a.tables, a.logger)
	if !ok {
		// generic document: the generic current-account extractor still
		// recovers printed balances and account references
		metaExtractor, _ = parser.StatementFor(models.FormatContoGenerico, a.tables, a.logger)
	}
	result.Metadata = metaExtractor.ExtractMetadata(fullText)

	for _, page := range pages {
		tag := formatdetect.Detect(page.Text)
		if tag == models.FormatGenerico || tag.IsBusta() {
			tag = docTag
		}
		ext, ok := parser.StatementFor(tag, a.tables, a.logger)
		if !ok {
			// generic document: try the generic current-account extractor
			ext, _ = parser.StatementFor(models.FormatContoGenerico, a.tables, a.logger)
		}
		txs := ext.ExtractTransactions(page.Text)
		a.logger.Debug("Extracted page transactions",
			logging.Field{Key: logging.FieldPage, Value: page.Index},
			logging.Field{Key: logging.FieldCount, Value: len(txs)})
		result.Transactions = append(result.Transactions, txs...)
	}

	result.Totals = computeTotals(result.Transactions)
	result.Warnings = crossCheckSaldi(result.Metadata, result.Totals)
	return result
}

// assemblePayslips dispatches each page to the payslip extractor and
// deduplicates employees by normalised name: repeated headers and footers
// must not count the same person twice.
func (a *Assembler) assemblePayslips(pages []models.RawPage, docTag models.FormatTag) models.DocumentExtractionResult {
	result := models.DocumentExtractionResult{
		Success:      true,
		Format:       docTag,
		DocumentKind: models.KindBustaPaga,
	}

	seen := make(map[string]bool)
	for _, page := range pages {
		tag := formatdetect.Detect(page.Text)
		if !tag.IsBusta() {
			tag = docTag
		}
		ext, ok := parser.PayslipFor(tag, a.netPay, a.logger)
		if !ok {
			continue
		}
		for _, p := range ext.ExtractPayslips(page.Text) {
			key := bustapaga.NormalizeName(p.EmployeeName)
			if seen[key] {
				continue
			}
			seen[key] = true
			result.Payslips = append(result.Payslips, p)
		}
	}

	totals := models.ExtractionTotals{Count: len(result.Payslips)}
	for _, p := range result.Payslips {
		totals.Uscite = totals.Uscite.Add(p.NetPay)
	}
	totals.Netto = totals.Uscite.Neg()
	result.Totals = totals
	return result
}

func computeTotals(txs []models.ExtractedTransaction) models.ExtractionTotals {
	totals := models.ExtractionTotals{Count: len(txs)}
	for _, tx := range txs {
		if tx.Amount.IsNegative() {
			totals.Uscite = totals.Uscite.Add(tx.Amount.Abs())
		} else {
			totals.Entrate = totals.Entrate.Add(tx.Amount)
		}
		totals.Netto = totals.Netto.Add(tx.Amount)
	}
	return totals
}

// crossCheckSaldi compares the computed net movement against the printed
// balance delta. A mismatch is a warning, never a failure: the printed totals
// themselves can be victims of the text layer.
func crossCheckSaldi(meta models.StatementMetadata, totals models.ExtractionTotals) []string {
	if !meta.HasSaldi() {
		return nil
	}
	delta := meta.ClosingBalance.Sub(meta.OpeningBalance)
	diff := totals.Netto.Sub(delta).Abs()
	if diff.LessThanOrEqual(saldoTolleranza) {
		return nil
	}
	return []string{fmt.Sprintf(
		"squadratura saldi: movimenti %s, delta saldo %s (differenza %s)",
		totals.Netto.StringFixed(2), delta.StringFixed(2), diff.StringFixed(2))}
}

func joinPages(pages []models.RawPage) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
