package riconcilia

import (
	"context"
	"fmt"

	"gestionale/estrazioni/internal/f24"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/parsererror"
	"gestionale/estrazioni/internal/store"
)

// RiconciliaManuale links a filing to a movement on an operator's say-so,
// bypassing the tolerance check. When the amounts differ beyond tolerance the
// link still happens but a structured warning is returned, so the operator
// confirms the inexact match deliberately.
func (e *Engine) RiconciliaManuale(ctx context.Context, filingID, movementID string) (string, error) {
	filingDoc, err := e.filings.Store.FindOne(ctx, CollectionF24, store.Filter{"_id": filingID})
	if err != nil {
		return "", err
	}
	if filingDoc == nil {
		return "", &parsererror.ValidationError{Entity: "F24 " + filingID, Reason: "non trovato"}
	}
	filing, err := filingFromDoc(filingDoc)
	if err != nil {
		return "", err
	}

	movementDoc, err := e.movements.Store.FindOne(ctx, CollectionMovimenti, store.Filter{"_id": movementID})
	if err != nil {
		return "", err
	}
	if movementDoc == nil {
		return "", &parsererror.ValidationError{Entity: "movimento " + movementID, Reason: "non trovato"}
	}
	movement, err := movementFromDoc(movementDoc)
	if err != nil {
		return "", err
	}

	won, err := e.movements.MarkReconciled(ctx, movementID, filingID)
	if err != nil {
		return "", err
	}
	if !won {
		return "", &parsererror.ValidationError{
			Entity: "movimento " + movementID,
			Reason: "già riconciliato",
		}
	}

	prior := filing.State
	filing.MovementRef = movementID
	if err := f24.Transition(&filing, models.StatoPagato); err != nil {
		e.releaseMovement(ctx, movementID, filingID)
		return "", err
	}
	won, err = e.filings.SetState(ctx, filingID, prior, models.StatoPagato,
		store.Filter{"movimento_id": movementID})
	if err != nil {
		e.releaseMovement(ctx, movementID, filingID)
		return "", err
	}
	if !won {
		e.releaseMovement(ctx, movementID, filingID)
		return "", &parsererror.ValidationError{
			Entity: "F24 " + filingID,
			Reason: "stato cambiato durante la riconciliazione",
		}
	}

	diff := filing.NetAmount.Sub(movement.Amount.Abs()).Abs()
	if diff.GreaterThan(e.cfg.Tolerance(filing.NetAmount)) {
		return fmt.Sprintf(
			"importo F24 %s e movimento %s differiscono di %s, oltre la tolleranza",
			filing.NetAmount.StringFixed(2), movement.Amount.Abs().StringFixed(2),
			diff.StringFixed(2)), nil
	}
	return "", nil
}
