package models

import (
	"github.com/shopspring/decimal"
)

// Direction is the resolved flow of money for an extracted transaction.
// Records whose direction cannot be determined are dropped by the extractors,
// so DirectionUnknown never appears on an emitted record.
type Direction string

const (
	DirectionEntrata Direction = "entrata"
	DirectionUscita  Direction = "uscita"
	DirectionUnknown Direction = ""
)

// ExtractedTransaction is a single bank movement recovered from statement text.
// Amount is signed: negative means an outflow.
type ExtractedTransaction struct {
	Date         string          `json:"data" csv:"Data"`
	ValueDate    string          `json:"data_valuta,omitempty" csv:"DataValuta"`
	Description  string          `json:"descrizione" csv:"Descrizione"`
	Amount       decimal.Decimal `json:"importo" csv:"Importo"`
	CategoryCode string          `json:"causale,omitempty" csv:"Causale"`
	SourceFormat FormatTag       `json:"formato_origine" csv:"FormatoOrigine"`
}

// IsOutflow reports whether the transaction moves money out of the account.
func (t ExtractedTransaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// StatementMetadata is the document-level information recovered alongside the
// transaction list. Balances are optional; HasSaldi reports whether both were
// found so the totals cross-check can run.
type StatementMetadata struct {
	Account        string          `json:"conto,omitempty"`
	IBAN           string          `json:"iban,omitempty"`
	CardNumber     string          `json:"carta,omitempty"`
	PeriodFrom     string          `json:"periodo_dal,omitempty"`
	PeriodTo       string          `json:"periodo_al,omitempty"`
	SaldiPresenti  bool            `json:"-"`
	OpeningBalance decimal.Decimal `json:"saldo_iniziale"`
	ClosingBalance decimal.Decimal `json:"saldo_finale"`
}

// HasSaldi reports whether both balances were extracted.
func (m StatementMetadata) HasSaldi() bool {
	return m.SaldiPresenti
}
