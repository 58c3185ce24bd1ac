// Package parser defines the extractor capability interfaces and the factory
// that selects an implementation from a detected format tag.
package parser

import (
	"gestionale/estrazioni/internal/models"
)

// StatementExtractor is the capability shared by all bank-statement
// extractors. Both methods are pure over the input text: no extraction ever
// returns an error for malformed content, only fewer records.
type StatementExtractor interface {
	// ExtractMetadata recovers document-level identifiers and balances.
	ExtractMetadata(text string) models.StatementMetadata

	// ExtractTransactions recovers zero or more typed transactions. Every
	// returned record has a determined sign; ambiguous records are dropped.
	ExtractTransactions(text string) []models.ExtractedTransaction
}

// PayslipExtractor is the capability shared by all payslip extractors.
type PayslipExtractor interface {
	// ExtractPayslips recovers zero or more payslips from one page of text.
	ExtractPayslips(text string) []models.Payslip
}
