package riconcilia

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/store"
)

// collection names in the document store
const (
	CollectionF24       = "f24"
	CollectionMovimenti = "movimenti"
)

// FilingRepository maps TaxFiling records onto the document store.
type FilingRepository struct {
	Store store.Store
}

func (r FilingRepository) Insert(ctx context.Context, f models.TaxFiling) error {
	return r.Store.Insert(ctx, CollectionF24, filingToDoc(f))
}

func (r FilingRepository) FindByState(ctx context.Context, state models.FilingState) ([]models.TaxFiling, error) {
	docs, err := r.Store.Find(ctx, CollectionF24, store.Filter{"stato": string(state)})
	if err != nil {
		return nil, err
	}
	return filingsFromDocs(docs)
}

func (r FilingRepository) FindAll(ctx context.Context) ([]models.TaxFiling, error) {
	docs, err := r.Store.Find(ctx, CollectionF24, store.Filter{})
	if err != nil {
		return nil, err
	}
	return filingsFromDocs(docs)
}

// SetState writes the new state, conditioned on the current one so a
// concurrent run cannot double-apply a transition.
func (r FilingRepository) SetState(ctx context.Context, id string, from, to models.FilingState, changes store.Filter) (bool, error) {
	if changes == nil {
		changes = store.Filter{}
	}
	changes["stato"] = string(to)
	return r.Store.UpdateOne(ctx, CollectionF24,
		store.Filter{"_id": id, "stato": string(from)}, changes)
}

// MovementRepository maps BankMovement records onto the document store. The
// ledger module owns the records; only Reconciled and the filing
// back-reference may be written from here.
type MovementRepository struct {
	Store store.Store
}

func (r MovementRepository) Insert(ctx context.Context, m models.BankMovement) error {
	return r.Store.Insert(ctx, CollectionMovimenti, movementToDoc(m))
}

func (r MovementRepository) FindUnreconciled(ctx context.Context) ([]models.BankMovement, error) {
	docs, err := r.Store.Find(ctx, CollectionMovimenti, store.Filter{"riconciliato": false})
	if err != nil {
		return nil, err
	}
	return movementsFromDocs(docs)
}

// MarkReconciled flips the movement to reconciled and attaches the filing
// reference. The filter includes riconciliato=false: if a concurrent run got
// there first, the update matches nothing and the caller drops the match.
func (r MovementRepository) MarkReconciled(ctx context.Context, movementID, filingID string) (bool, error) {
	return r.Store.UpdateOne(ctx, CollectionMovimenti,
		store.Filter{"_id": movementID, "riconciliato": false},
		store.Filter{"riconciliato": true, "f24_id": filingID})
}

// ReleaseReconciled undoes a MarkReconciled when the filing side of the
// settlement is lost. The filter names the filing too, so only the link this
// run created is removed.
func (r MovementRepository) ReleaseReconciled(ctx context.Context, movementID, filingID string) (bool, error) {
	return r.Store.UpdateOne(ctx, CollectionMovimenti,
		store.Filter{"_id": movementID, "riconciliato": true, "f24_id": filingID},
		store.Filter{"riconciliato": false, "f24_id": ""})
}

// document conversion: amounts travel as strings so store-level equality
// stays exact

func filingToDoc(f models.TaxFiling) store.Document {
	items, _ := json.Marshal(f.LineItems)
	return store.Document{
		"_id":            f.ID,
		"codice_fiscale": f.FiscalCode,
		"periodo":        f.ReferencePeriod,
		"tributi":        string(items),
		"importo_netto":  f.NetAmount.String(),
		"stato":          string(f.State),
		"tipo":           string(f.Kind),
		"sostituisce":    f.Supersedes,
		"sostituito_da":  f.SupersededBy,
		"movimento_id":   f.MovementRef,
	}
}

func filingFromDoc(doc store.Document) (models.TaxFiling, error) {
	f := models.TaxFiling{
		ID:              asString(doc["_id"]),
		FiscalCode:      asString(doc["codice_fiscale"]),
		ReferencePeriod: asString(doc["periodo"]),
		State:           models.FilingState(asString(doc["stato"])),
		Kind:            models.FilingKind(asString(doc["tipo"])),
		Supersedes:      asString(doc["sostituisce"]),
		SupersededBy:    asString(doc["sostituito_da"]),
		MovementRef:     asString(doc["movimento_id"]),
	}
	if raw := asString(doc["tributi"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &f.LineItems); err != nil {
			return f, err
		}
	}
	net, err := decimal.NewFromString(asString(doc["importo_netto"]))
	if err != nil {
		return f, err
	}
	f.NetAmount = net
	return f, nil
}

func filingsFromDocs(docs []store.Document) ([]models.TaxFiling, error) {
	filings := make([]models.TaxFiling, 0, len(docs))
	for _, doc := range docs {
		f, err := filingFromDoc(doc)
		if err != nil {
			return nil, err
		}
		filings = append(filings, f)
	}
	return filings, nil
}

func movementToDoc(m models.BankMovement) store.Document {
	return store.Document{
		"_id":          m.ID,
		"data":         m.Date,
		"importo":      m.Amount.String(),
		"descrizione":  m.Description,
		"riconciliato": m.Reconciled,
		"f24_id":       m.FilingRef,
	}
}

func movementFromDoc(doc store.Document) (models.BankMovement, error) {
	amount, err := decimal.NewFromString(asString(doc["importo"]))
	if err != nil {
		return models.BankMovement{}, err
	}
	return models.BankMovement{
		ID:          asString(doc["_id"]),
		Date:        asString(doc["data"]),
		Amount:      amount,
		Description: asString(doc["descrizione"]),
		Reconciled:  doc["riconciliato"] == true,
		FilingRef:   asString(doc["f24_id"]),
	}, nil
}

func movementsFromDocs(docs []store.Document) ([]models.BankMovement, error) {
	movements := make([]models.BankMovement, 0, len(docs))
	for _, doc := range docs {
		m, err := movementFromDoc(doc)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
