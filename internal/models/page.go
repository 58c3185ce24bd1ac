// Package models provides the data structures shared by the extraction and
// reconciliation packages.
package models

// RawPage is one page of linear text produced by the text-layer collaborator.
// It is consumed once by the extraction pipeline and never stored.
type RawPage struct {
	Index int
	Text  string
}

// FormatTag identifies a detected document layout variant and selects the
// extractor used for it.
type FormatTag string

const (
	FormatContoIntesa    FormatTag = "conto_intesa"
	FormatContoUnicredit FormatTag = "conto_unicredit"
	FormatContoGenerico  FormatTag = "conto_generico"
	FormatCartaNexi      FormatTag = "carta_nexi"
	FormatCartaGenerica  FormatTag = "carta_generica"
	FormatBustaCSC       FormatTag = "busta_csc"
	FormatBustaZucchetti FormatTag = "busta_zucchetti"
	FormatBustaGenerica  FormatTag = "busta_generica"
	FormatGenerico       FormatTag = "generico"
)

// IsBusta reports whether the tag selects a payslip extractor.
func (t FormatTag) IsBusta() bool {
	switch t {
	case FormatBustaCSC, FormatBustaZucchetti, FormatBustaGenerica:
		return true
	}
	return false
}

// IsCarta reports whether the tag selects a credit-card statement extractor.
func (t FormatTag) IsCarta() bool {
	return t == FormatCartaNexi || t == FormatCartaGenerica
}
