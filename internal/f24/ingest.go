package f24

import (
	"github.com/google/uuid"

	"gestionale/estrazioni/internal/models"
)

// NewFiling builds a filing in the RICEVUTO state with a fresh identifier and
// the net amount computed from its line items.
func NewFiling(fiscalCode, period string, items []models.F24LineItem) models.TaxFiling {
	f := models.TaxFiling{
		ID:              uuid.New().String(),
		FiscalCode:      fiscalCode,
		ReferencePeriod: period,
		LineItems:       items,
		State:           models.StatoRicevuto,
		Kind:            models.KindOrdinario,
	}
	f.NetAmount = f.ComputeNet()
	return f
}

// Ingest runs correlation detection for a new filing against the existing
// pool and, when the filing turns out to be an amendment, stamps it as a
// ravvedimento pointing at the original. The original's transition to
// SOSTITUITO is deferred until the amendment is paid; the reconciliation
// engine performs that cascade.
func Ingest(nuovo *models.TaxFiling, existing []models.TaxFiling, threshold float64) models.Correlation {
	corr := IdentifyRelatedFiling(*nuovo, existing, threshold)
	if corr.IsAmendment {
		nuovo.Kind = models.KindRavvedimento
		nuovo.Supersedes = corr.OriginalID
	}
	return corr
}
