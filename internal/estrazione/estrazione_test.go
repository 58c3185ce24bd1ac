package estrazione

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionale/estrazioni/internal/models"
)

func TestEstraiUnreadableDocument(t *testing.T) {
	a := NewAssembler(nil, nil)

	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: ""},
		{Index: 2, Text: "   \n  "},
	})

	assert.False(t, result.Success)
	assert.Equal(t, "documento illeggibile: nessun testo estraibile", result.Error)
	assert.Equal(t, models.KindSconosciuto, result.DocumentKind)
}

func TestEstraiReadableButEmptyStatement(t *testing.T) {
	a := NewAssembler(nil, nil)

	// recognisable statement text without a single parseable movement row:
	// the run succeeds with zero records
	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: "INTESA SANPAOLO\nEstratto conto\nnessun movimento nel periodo"},
	})

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, models.KindEstrattoConto, result.DocumentKind)
	assert.Equal(t, models.FormatContoIntesa, result.Format)
	assert.Empty(t, result.Transactions)
	assert.Zero(t, result.Totals.Count)
}

func TestEstraiStatement(t *testing.T) {
	a := NewAssembler(nil, nil)

	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: `INTESA SANPAOLO
Estratto conto dal 01/12/2021 al 31/12/2021
03/01/2022 31/12/2021 18 Interessi creditori 0,11 €
05/01/2022 05/01/2022 26 Addebito utenze 87,30 €`},
	})

	require.True(t, result.Success)
	assert.Equal(t, models.KindEstrattoConto, result.DocumentKind)
	require.Len(t, result.Transactions, 2)

	assert.Equal(t, 2, result.Totals.Count)
	assert.Equal(t, "0.11", result.Totals.Entrate.String())
	assert.Equal(t, "87.3", result.Totals.Uscite.String())
	assert.Equal(t, "-87.19", result.Totals.Netto.String())
}

func TestEstraiCardStatement(t *testing.T) {
	a := NewAssembler(nil, nil)

	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: `NEXI PAYMENTS
Estratto conto carta
05/12/2021 SUPERMERCATO ROSSI 54,30`},
	})

	require.True(t, result.Success)
	assert.Equal(t, models.KindEstrattoCarta, result.DocumentKind)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "-54.3", result.Transactions[0].Amount.String())
}

func TestEstraiBalanceCrossCheck(t *testing.T) {
	a := NewAssembler(nil, nil)

	// printed delta is +200,00 but the single extracted movement is +0,11:
	// the mismatch surfaces as a warning, never a failure
	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: `INTESA SANPAOLO
Estratto conto
Saldo iniziale 1.000,00
03/01/2022 31/12/2021 18 Interessi creditori 0,11
Saldo finale 1.200,00`},
	})

	require.True(t, result.Success)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "squadratura saldi")
	assert.Contains(t, result.Warnings[0], "0.11")
	assert.Contains(t, result.Warnings[0], "200.00")
}

func TestEstraiBalanceCrossCheckWithinTolerance(t *testing.T) {
	a := NewAssembler(nil, nil)

	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: `INTESA SANPAOLO
Estratto conto
Saldo iniziale 1.000,00
03/01/2022 31/12/2021 18 Interessi creditori 0,11
Saldo finale 1.000,11`},
	})

	require.True(t, result.Success)
	assert.Empty(t, result.Warnings)
}

func TestEstraiGenericDocumentStillExtractsMetadata(t *testing.T) {
	a := NewAssembler(nil, nil)

	// no bank fingerprint at all: the document tag stays generic, but the
	// generic current-account extractor still reads the printed balances,
	// so the cross-check can fire
	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: `Documento di riepilogo conto
Saldo iniziale 1.000,00
03/01/2022 31/12/2021 18 Interessi creditori 0,11
Saldo contabile finale 1.200,00`},
	})

	require.True(t, result.Success)
	assert.Equal(t, models.FormatGenerico, result.Format)
	assert.True(t, result.Metadata.SaldiPresenti)
	assert.Equal(t, "1000", result.Metadata.OpeningBalance.String())
	assert.Equal(t, "1200", result.Metadata.ClosingBalance.String())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "squadratura saldi")
}

func TestEstraiPayslipCustomNetPayBounds(t *testing.T) {
	a := NewAssembler(nil, nil)
	a.SetNetPayBounds(decimal.NewFromInt(10000), decimal.NewFromInt(50000))

	// with the shipped limits 25.000,00 would be discarded as implausible
	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: `CEDOLINO DICEMBRE 2021
VERDI LUIGI
VRDLGU85M10F205Z
premio straordinario 25.000,00`},
	})

	require.True(t, result.Success)
	require.Len(t, result.Payslips, 1)
	assert.Equal(t, "25000", result.Payslips[0].NetPay.String())
	assert.Equal(t, models.NetPayEuristica, result.Payslips[0].NetPayRule)
}

func TestEstraiPayslipsDedupAcrossPages(t *testing.T) {
	a := NewAssembler(nil, nil)

	// same employee repeated on a continuation page: one record
	page := `CEDOLINO DICEMBRE 2021
ROSSI MARIO
RSSMRA80A01H501U
NETTO DEL MESE 1.500,00`

	result := a.Estrai([]models.RawPage{
		{Index: 1, Text: page},
		{Index: 2, Text: page},
		{Index: 3, Text: `CEDOLINO DICEMBRE 2021
BIANCHI ANNA
BNCNNA90C41H501X
NETTO DEL MESE 1.320,00`},
	})

	require.True(t, result.Success)
	assert.Equal(t, models.KindBustaPaga, result.DocumentKind)
	require.Len(t, result.Payslips, 2)
	assert.Equal(t, "ROSSI MARIO", result.Payslips[0].EmployeeName)
	assert.Equal(t, "BIANCHI ANNA", result.Payslips[1].EmployeeName)

	assert.Equal(t, 2, result.Totals.Count)
	assert.Equal(t, "2820", result.Totals.Uscite.String())
	assert.Equal(t, "-2820", result.Totals.Netto.String())
}
