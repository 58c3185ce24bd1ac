package models

import (
	"github.com/shopspring/decimal"
)

// FilingState is the lifecycle state of an F24 filing.
//
//	RICEVUTO → DA_PAGARE → {PAGATO | SCADUTO | SOSTITUITO} → [ANNULLATO]
type FilingState string

const (
	StatoRicevuto   FilingState = "RICEVUTO"
	StatoDaPagare   FilingState = "DA_PAGARE"
	StatoPagato     FilingState = "PAGATO"
	StatoScaduto    FilingState = "SCADUTO"
	StatoSostituito FilingState = "SOSTITUITO"
	StatoAnnullato  FilingState = "ANNULLATO"
)

// FilingKind distinguishes an original filing from a corrective re-filing.
type FilingKind string

const (
	KindOrdinario    FilingKind = "ORDINARIO"
	KindRavvedimento FilingKind = "RAVVEDIMENTO"
)

// F24LineItem is one tax line of a filing. Either side may be zero.
type F24LineItem struct {
	TaxCode      string          `json:"codice_tributo"`
	DebitAmount  decimal.Decimal `json:"importo_debito"`
	CreditAmount decimal.Decimal `json:"importo_credito"`
}

// TaxFiling is a consolidated F24 tax-payment form.
type TaxFiling struct {
	ID              string          `json:"id"`
	FiscalCode      string          `json:"codice_fiscale"`
	ReferencePeriod string          `json:"periodo_riferimento"`
	LineItems       []F24LineItem   `json:"tributi"`
	NetAmount       decimal.Decimal `json:"importo_netto"`
	State           FilingState     `json:"stato"`
	Kind            FilingKind      `json:"tipo"`
	Supersedes      string          `json:"sostituisce,omitempty"`
	SupersededBy    string          `json:"sostituito_da,omitempty"`
	MovementRef     string          `json:"movimento_id,omitempty"`
}

// TaxCodes returns the set of tax codes carried by the filing's line items.
func (f TaxFiling) TaxCodes() []string {
	codes := make([]string, 0, len(f.LineItems))
	seen := make(map[string]bool, len(f.LineItems))
	for _, li := range f.LineItems {
		if !seen[li.TaxCode] {
			seen[li.TaxCode] = true
			codes = append(codes, li.TaxCode)
		}
	}
	return codes
}

// ComputeNet returns the filing total: sum of debits minus sum of credits.
func (f TaxFiling) ComputeNet() decimal.Decimal {
	net := decimal.Zero
	for _, li := range f.LineItems {
		net = net.Add(li.DebitAmount).Sub(li.CreditAmount)
	}
	return net
}

// Correlation is the transient result of amendment detection. It is never
// persisted; it only drives the Supersedes assignment on the new filing.
type Correlation struct {
	IsAmendment     bool            `json:"is_ravvedimento"`
	OriginalID      string          `json:"id_originale,omitempty"`
	MatchedTaxCodes []string        `json:"codici_comuni,omitempty"`
	AmountDelta     decimal.Decimal `json:"delta_importo"`
}
