// Package pdftext obtains per-page text from source PDFs. The extraction core
// never touches PDF structure itself; this package is the caller-side
// collaborator that feeds it RawPage values.
package pdftext

import (
	"os"
	"os/exec"
	"strings"

	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/parsererror"
)

// Extractor turns a PDF file into page text. The interface exists so tests
// can inject canned text instead of invoking pdftotext.
type Extractor interface {
	// ExtractPages returns the text of every page, in order.
	ExtractPages(pdfPath string) ([]models.RawPage, error)
}

// PdftotextExtractor shells out to the poppler pdftotext tool with -layout,
// which preserves enough column spacing for the line patterns downstream.
type PdftotextExtractor struct{}

// NewPdftotextExtractor creates the production extractor.
func NewPdftotextExtractor() *PdftotextExtractor {
	return &PdftotextExtractor{}
}

// ExtractPages runs pdftotext and splits the output on form feeds.
func (e *PdftotextExtractor) ExtractPages(pdfPath string) ([]models.RawPage, error) {
	tempFile := pdfPath + ".txt"

	cmd := exec.Command("pdftotext", "-layout", pdfPath, tempFile)
	if err := cmd.Run(); err != nil {
		return nil, &parsererror.ParseError{
			Parser: "pdftotext",
			Field:  "documento",
			Value:  pdfPath,
			Err:    err,
		}
	}

	output, err := os.ReadFile(tempFile)
	if err != nil {
		return nil, &parsererror.DataExtractionError{
			Source:    pdfPath,
			FieldName: "testo",
			Reason:    err.Error(),
		}
	}
	_ = os.Remove(tempFile)

	return SplitPages(string(output)), nil
}

// SplitPages splits raw extracted text into pages on the form-feed character
// pdftotext emits between pages.
func SplitPages(text string) []models.RawPage {
	parts := strings.Split(text, "\f")
	pages := make([]models.RawPage, 0, len(parts))
	for i, part := range parts {
		if strings.TrimSpace(part) == "" && i == len(parts)-1 {
			// pdftotext terminates the last page with a trailing form feed
			continue
		}
		pages = append(pages, models.RawPage{Index: i, Text: part})
	}
	return pages
}

// MockExtractor returns canned pages for tests.
type MockExtractor struct {
	Pages []models.RawPage
	Err   error
}

// ExtractPages returns the canned pages or error.
func (m *MockExtractor) ExtractPages(string) ([]models.RawPage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pages, nil
}
