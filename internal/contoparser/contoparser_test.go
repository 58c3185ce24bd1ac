package contoparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionale/estrazioni/internal/models"
)

func TestExtractTransactionsFullRow(t *testing.T) {
	e := New(models.FormatContoIntesa, nil, nil)

	text := `ESTRATTO CONTO
Data contabile Data valuta Causale Descrizione Importo
03/01/2022 31/12/2021 18 Interessi creditori 0,11 €
05/01/2022 05/01/2022 26 Addebito utenze energia 87,30 €
Saldo finale 1.200,00`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 2)

	assert.Equal(t, "2022-01-03", txs[0].Date)
	assert.Equal(t, "2021-12-31", txs[0].ValueDate)
	assert.Equal(t, "18", txs[0].CategoryCode)
	assert.Equal(t, "Interessi creditori", txs[0].Description)
	assert.Equal(t, "0.11", txs[0].Amount.String())
	assert.Equal(t, models.FormatContoIntesa, txs[0].SourceFormat)

	assert.Equal(t, "26", txs[1].CategoryCode)
	assert.Equal(t, "-87.3", txs[1].Amount.String())
}

func TestExtractTransactionsFallbackPattern(t *testing.T) {
	e := New(models.FormatContoGenerico, nil, nil)

	// no causale column: the primary pattern yields nothing and the
	// sign-suffixed fallback takes over
	text := `15/03/2022 Bonifico a vostro favore Rossi 1.845,00+
18/03/2022 Commissioni tenuta conto 12,00-`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 2)

	assert.Equal(t, "1845", txs[0].Amount.String())
	assert.Equal(t, "-12", txs[1].Amount.String())
	assert.Empty(t, txs[0].CategoryCode)
}

func TestExtractTransactionsDottedDates(t *testing.T) {
	e := New(models.FormatContoIntesa, nil, nil)

	text := `03.01.22 31.12.21 Versamento contante 500,00+`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "2022-01-03", txs[0].Date)
	assert.Equal(t, "2021-12-31", txs[0].ValueDate)
	assert.Equal(t, "500", txs[0].Amount.String())
}

func TestExtractTransactionsDropsUndeterminedDirection(t *testing.T) {
	e := New(models.FormatContoGenerico, nil, nil)

	// causale 99 is unknown and the description carries no keyword: the
	// record must be dropped, not guessed
	text := `03/01/2022 03/01/2022 99 Operazione diversa 50,00
04/01/2022 04/01/2022 48 Bonifico a vostro favore 100,00`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "100", txs[0].Amount.String())
}

func TestExtractTransactionsSkipsNonTransactionLines(t *testing.T) {
	e := New(models.FormatContoGenerico, nil, nil)

	text := `Saldo iniziale al 01/01/2022 1.000,00
03/01/2022 03/01/2022 18 Interessi creditori 0,11
Totale movimenti 0,11
Pagina 1 di 2`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "0.11", txs[0].Amount.String())
}

func TestExtractTransactionsExplicitSignWinsOverKeywords(t *testing.T) {
	e := New(models.FormatContoGenerico, nil, nil)

	// "ACCREDITO" suggests inflow but the printed sign says otherwise
	text := `03/01/2022 Storno accredito errato 25,00-`

	txs := e.ExtractTransactions(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "-25", txs[0].Amount.String())
}

func TestExtractTransactionsEmptyText(t *testing.T) {
	e := New(models.FormatContoGenerico, nil, nil)
	assert.Empty(t, e.ExtractTransactions(""))
}

func TestExtractMetadata(t *testing.T) {
	e := New(models.FormatContoIntesa, nil, nil)

	text := `INTESA SANPAOLO
IBAN IT60X0542811101000000123456
Conto corrente n. 1000/123456
Estratto conto dal 01/10/2021 al 31/12/2021
Saldo iniziale 1.000,00
Saldo finale 1.200,00`

	meta := e.ExtractMetadata(text)

	assert.Equal(t, "IT60X0542811101000000123456", meta.IBAN)
	assert.Equal(t, "1000/123456", meta.Account)
	assert.Equal(t, "2021-10-01", meta.PeriodFrom)
	assert.Equal(t, "2021-12-31", meta.PeriodTo)
	assert.True(t, meta.SaldiPresenti)
	assert.Equal(t, "1000", meta.OpeningBalance.String())
	assert.Equal(t, "1200", meta.ClosingBalance.String())
}

func TestExtractMetadataBalancesRequireBoth(t *testing.T) {
	e := New(models.FormatContoGenerico, nil, nil)

	meta := e.ExtractMetadata("Saldo iniziale 1.000,00\nnessun saldo finale stampato")
	assert.False(t, meta.SaldiPresenti)
}
