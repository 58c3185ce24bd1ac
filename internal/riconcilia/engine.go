package riconcilia

import (
	"context"

	"github.com/shopspring/decimal"

	"gestionale/estrazioni/internal/f24"
	"gestionale/estrazioni/internal/logging"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/store"
)

// Engine matches outstanding filings against unreconciled bank movements.
// Every pairing decision is an independent optimistic read-modify-write: a
// match that loses a concurrent race is dropped and retried on the next run.
type Engine struct {
	cfg       MatchingConfig
	filings   FilingRepository
	movements MovementRepository
	logger    logging.Logger
}

// NewEngine creates an engine over the given document store.
func NewEngine(st store.Store, cfg MatchingConfig, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		cfg:       cfg,
		filings:   FilingRepository{Store: st},
		movements: MovementRepository{Store: st},
		logger:    logger,
	}
}

// MatchOutcome reports one settled filing.
type MatchOutcome struct {
	FilingID   string
	MovementID string
	Difference decimal.Decimal
	Cascaded   string // ID of the original filing moved to SOSTITUITO, if any
}

// Run matches every outstanding filing (DA_PAGARE, plus overdue SCADUTO ones)
// against the unreconciled movement pool and returns the settled pairs.
func (e *Engine) Run(ctx context.Context) ([]MatchOutcome, error) {
	outstanding, err := e.filings.FindByState(ctx, models.StatoDaPagare)
	if err != nil {
		return nil, err
	}
	overdue, err := e.filings.FindByState(ctx, models.StatoScaduto)
	if err != nil {
		return nil, err
	}
	outstanding = append(outstanding, overdue...)

	pool, err := e.movements.FindUnreconciled(ctx)
	if err != nil {
		return nil, err
	}

	var outcomes []MatchOutcome
	consumed := make(map[string]bool, len(pool))

	for _, filing := range outstanding {
		idx, diff := e.bestCandidate(filing, pool, consumed)
		if idx < 0 {
			continue
		}
		movement := pool[idx]

		outcome, ok := e.settle(ctx, filing, movement, diff)
		if !ok {
			// lost the optimistic race, leave the filing for the next run
			continue
		}
		consumed[movement.ID] = true
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// bestCandidate finds the unconsumed movement with the smallest amount
// difference within tolerance. A filing of amount A matches a movement of
// -A±tol: the payment is an outflow.
func (e *Engine) bestCandidate(filing models.TaxFiling, pool []models.BankMovement, consumed map[string]bool) (int, decimal.Decimal) {
	tol := e.cfg.Tolerance(filing.NetAmount)
	bestIdx := -1
	var bestDiff decimal.Decimal

	for i, movement := range pool {
		if consumed[movement.ID] || !movement.Amount.IsNegative() {
			continue
		}
		diff := filing.NetAmount.Sub(movement.Amount.Abs()).Abs()
		if diff.GreaterThan(tol) {
			continue
		}
		if bestIdx < 0 || diff.LessThan(bestDiff) {
			bestIdx = i
			bestDiff = diff
		}
	}
	return bestIdx, bestDiff
}

// settle marks the movement reconciled (optimistically), moves the filing to
// PAGATO and cascades an amendment's original to SOSTITUITO.
func (e *Engine) settle(ctx context.Context, filing models.TaxFiling, movement models.BankMovement, diff decimal.Decimal) (MatchOutcome, bool) {
	won, err := e.movements.MarkReconciled(ctx, movement.ID, filing.ID)
	if err != nil || !won {
		if err != nil {
			e.logger.WithError(err).Warn("Failed to mark movement reconciled",
				logging.Field{Key: logging.FieldMovement, Value: movement.ID})
		}
		return MatchOutcome{}, false
	}

	prior := filing.State
	filing.MovementRef = movement.ID
	if err := f24.Transition(&filing, models.StatoPagato); err != nil {
		e.logger.WithError(err).Error("Filing refused PAGATO transition",
			logging.Field{Key: logging.FieldFiling, Value: filing.ID})
		e.releaseMovement(ctx, movement.ID, filing.ID)
		return MatchOutcome{}, false
	}
	won, err = e.filings.SetState(ctx, filing.ID, prior, models.StatoPagato,
		store.Filter{"movimento_id": movement.ID})
	if err != nil || !won {
		// the filing moved concurrently (e.g. another run already paid it);
		// give the movement back to the pool and drop the match
		if err != nil {
			e.logger.WithError(err).Warn("Failed to update filing state",
				logging.Field{Key: logging.FieldFiling, Value: filing.ID})
		}
		e.releaseMovement(ctx, movement.ID, filing.ID)
		return MatchOutcome{}, false
	}

	e.logger.Info("Filing reconciled",
		logging.Field{Key: logging.FieldFiling, Value: filing.ID},
		logging.Field{Key: logging.FieldMovement, Value: movement.ID},
		logging.Field{Key: logging.FieldAmount, Value: filing.NetAmount.StringFixed(2)})

	outcome := MatchOutcome{
		FilingID:   filing.ID,
		MovementID: movement.ID,
		Difference: diff,
	}

	if filing.Kind == models.KindRavvedimento && filing.Supersedes != "" {
		if e.cascadeSupersede(ctx, filing) {
			outcome.Cascaded = filing.Supersedes
		}
	}
	return outcome, true
}

// releaseMovement undoes an optimistic MarkReconciled after the filing side
// of the settlement was lost. The movement returns to the pool for the next
// run.
func (e *Engine) releaseMovement(ctx context.Context, movementID, filingID string) {
	if _, err := e.movements.ReleaseReconciled(ctx, movementID, filingID); err != nil {
		e.logger.WithError(err).Warn("Failed to release movement",
			logging.Field{Key: logging.FieldMovement, Value: movementID})
	}
}

// cascadeSupersede moves the amended original to SOSTITUITO now that the
// corrective filing is paid.
func (e *Engine) cascadeSupersede(ctx context.Context, amendment models.TaxFiling) bool {
	for _, from := range []models.FilingState{models.StatoDaPagare, models.StatoScaduto} {
		ok, err := e.filings.SetState(ctx, amendment.Supersedes, from, models.StatoSostituito,
			store.Filter{"sostituito_da": amendment.ID})
		if err != nil {
			e.logger.WithError(err).Warn("Failed to supersede original filing",
				logging.Field{Key: logging.FieldFiling, Value: amendment.Supersedes})
			return false
		}
		if ok {
			e.logger.Info("Original filing superseded",
				logging.Field{Key: logging.FieldFiling, Value: amendment.Supersedes})
			return true
		}
	}
	return false
}
