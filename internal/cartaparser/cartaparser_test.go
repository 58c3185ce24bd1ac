package cartaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionale/estrazioni/internal/models"
)

func TestExtractTransactionsDefaultOutflow(t *testing.T) {
	e := New(models.FormatCartaNexi, nil, nil)

	text := `05/12/2021 07/12/2021 SUPERMERCATO ESSELUNGA MILANO 54,30
10/12/2021 11/12/2021 RISTORANTE DA MARIO ROMA 86,00
15/12/2021 15/12/2021 ADDEBITO SU CONTO CORRENTE 140,30
TOTALE SPESE 140,30`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 3)

	// purchases default to outflow
	assert.Equal(t, "-54.3", txs[0].Amount.String())
	assert.Equal(t, "2021-12-05", txs[0].Date)
	assert.Equal(t, "2021-12-07", txs[0].ValueDate)
	assert.Equal(t, "-86", txs[1].Amount.String())

	// the monthly settlement row is a credit
	assert.Equal(t, "140.3", txs[2].Amount.String())
}

func TestExtractTransactionsRefundIsInflow(t *testing.T) {
	e := New(models.FormatCartaGenerica, nil, nil)

	text := `05/12/2021 AMAZON EU SARL 29,99
12/12/2021 RIMBORSO AMAZON EU SARL 29,99`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 2)
	assert.Equal(t, "-29.99", txs[0].Amount.String())
	assert.Equal(t, "29.99", txs[1].Amount.String())
}

func TestExtractTransactionsSkipsTotals(t *testing.T) {
	e := New(models.FormatCartaGenerica, nil, nil)

	text := `Saldo precedente 100,00
05/12/2021 BAR CENTRALE 3,50
Massimale carta 1.500,00`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "-3.5", txs[0].Amount.String())
}

func TestExtractTransactionsEmptyText(t *testing.T) {
	e := New(models.FormatCartaGenerica, nil, nil)
	assert.Empty(t, e.ExtractTransactions(""))
}

func TestExtractMetadata(t *testing.T) {
	e := New(models.FormatCartaNexi, nil, nil)

	text := `NEXI PAYMENTS
Carta 1234 **** **** 5678
Titolare: MARIO ROSSI`

	meta := e.ExtractMetadata(text)
	assert.Equal(t, "**** 5678", meta.CardNumber)
	assert.Equal(t, "MARIO ROSSI", meta.Account)
}
