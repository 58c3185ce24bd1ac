package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatTagFamilies(t *testing.T) {
	assert.True(t, FormatBustaCSC.IsBusta())
	assert.True(t, FormatBustaZucchetti.IsBusta())
	assert.True(t, FormatBustaGenerica.IsBusta())
	assert.False(t, FormatContoIntesa.IsBusta())

	assert.True(t, FormatCartaNexi.IsCarta())
	assert.True(t, FormatCartaGenerica.IsCarta())
	assert.False(t, FormatContoGenerico.IsCarta())
	assert.False(t, FormatGenerico.IsCarta())
}

func TestExtractedTransactionIsOutflow(t *testing.T) {
	out := ExtractedTransaction{Amount: decimal.RequireFromString("-12.50")}
	in := ExtractedTransaction{Amount: decimal.RequireFromString("0.11")}

	assert.True(t, out.IsOutflow())
	assert.False(t, in.IsOutflow())
}

func TestTaxFilingTaxCodes(t *testing.T) {
	f := TaxFiling{LineItems: []F24LineItem{
		{TaxCode: "1001", DebitAmount: decimal.NewFromInt(100)},
		{TaxCode: "1001", DebitAmount: decimal.NewFromInt(50)},
		{TaxCode: "3800", DebitAmount: decimal.NewFromInt(25)},
	}}

	assert.Equal(t, []string{"1001", "3800"}, f.TaxCodes())
}

func TestTaxFilingComputeNet(t *testing.T) {
	f := TaxFiling{LineItems: []F24LineItem{
		{TaxCode: "1001", DebitAmount: decimal.NewFromInt(300)},
		{TaxCode: "6099", CreditAmount: decimal.NewFromInt(120)},
	}}

	assert.Equal(t, "180", f.ComputeNet().String())
	assert.True(t, TaxFiling{}.ComputeNet().IsZero())
}
