package models

import (
	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes the supported source document families.
type DocumentKind string

const (
	KindEstrattoConto DocumentKind = "estratto_conto"
	KindEstrattoCarta DocumentKind = "estratto_carta"
	KindBustaPaga     DocumentKind = "busta_paga"
	KindSconosciuto   DocumentKind = "sconosciuto"
)

// DocumentExtractionResult is the document-level output of a full extraction
// run. Success false means the document was unreadable; success true with an
// empty record list is a valid result for a period with no movements.
// The JSON field names are part of the downstream reporting contract.
type DocumentExtractionResult struct {
	Success      bool                   `json:"success"`
	Error        string                 `json:"errore,omitempty"`
	DocumentKind DocumentKind           `json:"tipo_documento"`
	Format       FormatTag              `json:"formato"`
	Metadata     StatementMetadata      `json:"metadata"`
	Transactions []ExtractedTransaction `json:"transazioni,omitempty"`
	Payslips     []Payslip              `json:"cedolino,omitempty"`
	Totals       ExtractionTotals       `json:"totale_transazioni"`
	Warnings     []string               `json:"warnings,omitempty"`
}

// ExtractionTotals is computed from the extracted records, never copied from
// totals printed in the source, so the two can be cross-checked.
type ExtractionTotals struct {
	Count   int             `json:"numero"`
	Entrate decimal.Decimal `json:"entrate"`
	Uscite  decimal.Decimal `json:"uscite"`
	Netto   decimal.Decimal `json:"netto"`
}
