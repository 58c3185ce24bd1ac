package models

import (
	"github.com/shopspring/decimal"
)

// BankMovement is the ledger module's record of a bank movement. The
// reconciliation engine consumes it read-only: it may only flip Reconciled and
// attach the filing back-reference through the store's update interface.
type BankMovement struct {
	ID          string          `json:"id" csv:"ID"`
	Date        string          `json:"data" csv:"Data"`
	Amount      decimal.Decimal `json:"importo" csv:"Importo"`
	Description string          `json:"descrizione" csv:"Descrizione"`
	Reconciled  bool            `json:"riconciliato" csv:"Riconciliato"`
	FilingRef   string          `json:"f24_id,omitempty" csv:"-"`
}
