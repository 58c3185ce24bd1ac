package f24

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionale/estrazioni/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.FilingState
		to      models.FilingState
		allowed bool
	}{
		{"Ricevuto to da pagare", models.StatoRicevuto, models.StatoDaPagare, true},
		{"Da pagare to pagato", models.StatoDaPagare, models.StatoPagato, true},
		{"Da pagare to scaduto", models.StatoDaPagare, models.StatoScaduto, true},
		{"Da pagare to sostituito", models.StatoDaPagare, models.StatoSostituito, true},
		{"Late payment settles overdue filing", models.StatoScaduto, models.StatoPagato, true},
		{"Pagato to annullato", models.StatoPagato, models.StatoAnnullato, true},
		{"Scaduto to annullato", models.StatoScaduto, models.StatoAnnullato, true},
		{"Sostituito to annullato", models.StatoSostituito, models.StatoAnnullato, true},
		{"Ricevuto cannot skip to pagato", models.StatoRicevuto, models.StatoPagato, false},
		{"Da pagare cannot be annulled directly", models.StatoDaPagare, models.StatoAnnullato, false},
		{"Pagato is not reversible", models.StatoPagato, models.StatoDaPagare, false},
		{"Annullato is terminal", models.StatoAnnullato, models.StatoDaPagare, false},
		{"Sostituito cannot be paid", models.StatoSostituito, models.StatoPagato, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestTransitionGuardPagato(t *testing.T) {
	f := models.TaxFiling{ID: "f1", State: models.StatoDaPagare}

	err := Transition(&f, models.StatoPagato)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movimento bancario")
	assert.Equal(t, models.StatoDaPagare, f.State)

	f.MovementRef = "m1"
	require.NoError(t, Transition(&f, models.StatoPagato))
	assert.Equal(t, models.StatoPagato, f.State)
}

func TestTransitionGuardSostituito(t *testing.T) {
	f := models.TaxFiling{ID: "f1", State: models.StatoDaPagare}

	err := Transition(&f, models.StatoSostituito)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sostitutivo")
	assert.Equal(t, models.StatoDaPagare, f.State)

	f.SupersededBy = "f2"
	require.NoError(t, Transition(&f, models.StatoSostituito))
	assert.Equal(t, models.StatoSostituito, f.State)
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	f := models.TaxFiling{ID: "f1", State: models.StatoRicevuto, MovementRef: "m1"}

	err := Transition(&f, models.StatoPagato)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transizione non ammessa")
	assert.Equal(t, models.StatoRicevuto, f.State)
}
