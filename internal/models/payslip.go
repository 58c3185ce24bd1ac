package models

import (
	"github.com/shopspring/decimal"
)

// NetPayRule names the extraction rule that produced the net-pay figure, in
// decreasing order of confidence. Callers use it to report a confidence tier.
type NetPayRule string

const (
	NetPayEtichetta NetPayRule = "etichetta" // a labelled total line matched
	NetPaySuffisso  NetPayRule = "suffisso"  // a trailing +-suffixed amount matched
	NetPayEuristica NetPayRule = "euristica" // bounded-magnitude last resort
)

// Payslip is one employee's payslip as recovered from a single parse pass.
// Instances are never mutated after assembly; re-parsing produces new ones.
// Optional monetary fields are nil when the layout did not expose them.
type Payslip struct {
	EmployeeName   string           `json:"dipendente"`
	FiscalCode     string           `json:"codice_fiscale,omitempty"`
	PeriodMonth    int              `json:"mese"`
	PeriodYear     int              `json:"anno"`
	GrossPay       *decimal.Decimal `json:"lordo,omitempty"`
	NetPay         decimal.Decimal  `json:"netto"`
	NetPayRule     NetPayRule       `json:"regola_netto"`
	Deductions     *decimal.Decimal `json:"trattenute,omitempty"`
	EmployerSocial *decimal.Decimal `json:"contributi_datore,omitempty"`
	TFRAccrual     *decimal.Decimal `json:"accantonamento_tfr,omitempty"`
	SourceFormat   FormatTag        `json:"formato_origine"`
}
