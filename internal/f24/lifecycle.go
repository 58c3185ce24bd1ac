// Package f24 owns the tax-filing lifecycle state machine and the amendment
// correlation logic.
package f24

import (
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/parsererror"
)

// transitions holds the allowed state moves:
//
//	RICEVUTO → DA_PAGARE → {PAGATO | SCADUTO | SOSTITUITO} → ANNULLATO
//
// plus SCADUTO → PAGATO: an overdue filing whose payment shows up late is
// still settled by the reconciliation run.
var transitions = map[models.FilingState][]models.FilingState{
	models.StatoRicevuto:   {models.StatoDaPagare},
	models.StatoDaPagare:   {models.StatoPagato, models.StatoScaduto, models.StatoSostituito},
	models.StatoScaduto:    {models.StatoPagato, models.StatoAnnullato},
	models.StatoPagato:     {models.StatoAnnullato},
	models.StatoSostituito: {models.StatoAnnullato},
}

// CanTransition reports whether the state move is allowed by the diagram.
func CanTransition(from, to models.FilingState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition applies a state change, enforcing the lifecycle guards:
// PAGATO requires an attached bank-movement reference, SOSTITUITO requires
// that another filing references this one via its supersedes field.
func Transition(f *models.TaxFiling, to models.FilingState) error {
	if !CanTransition(f.State, to) {
		return &parsererror.ValidationError{
			Entity: "F24 " + f.ID,
			Reason: "transizione non ammessa: " + string(f.State) + " → " + string(to),
		}
	}
	switch to {
	case models.StatoPagato:
		if f.MovementRef == "" {
			return &parsererror.ValidationError{
				Entity: "F24 " + f.ID,
				Reason: "PAGATO richiede un movimento bancario associato",
			}
		}
	case models.StatoSostituito:
		if f.SupersededBy == "" {
			return &parsererror.ValidationError{
				Entity: "F24 " + f.ID,
				Reason: "SOSTITUITO richiede un F24 sostitutivo che lo referenzia",
			}
		}
	}
	f.State = to
	return nil
}
