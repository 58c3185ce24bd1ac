package pdftext

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionale/estrazioni/internal/parsererror"
)

func TestExtractPagesReportsTypedError(t *testing.T) {
	// whether pdftotext is missing or just refuses the path, the failure
	// comes back typed with the offending document attached
	missing := filepath.Join(t.TempDir(), "inesistente.pdf")

	_, err := NewPdftotextExtractor().ExtractPages(missing)
	require.Error(t, err)

	var perr *parsererror.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "pdftotext", perr.Parser)
	assert.Equal(t, missing, perr.Value)
}

func TestSplitPages(t *testing.T) {
	pages := SplitPages("pagina uno\fpagina due\f")
	require.Len(t, pages, 2)
	assert.Equal(t, 0, pages[0].Index)
	assert.Equal(t, "pagina uno", pages[0].Text)
	assert.Equal(t, 1, pages[1].Index)
	assert.Equal(t, "pagina due", pages[1].Text)
}

func TestSplitPagesNoFormFeed(t *testing.T) {
	pages := SplitPages("solo una pagina")
	require.Len(t, pages, 1)
	assert.Equal(t, "solo una pagina", pages[0].Text)
}

func TestSplitPagesKeepsInnerBlankPage(t *testing.T) {
	// an empty page in the middle of the document is still a page
	pages := SplitPages("uno\f\fdue\f")
	require.Len(t, pages, 3)
	assert.Equal(t, "", pages[1].Text)
}

func TestSplitPagesEmptyInput(t *testing.T) {
	assert.Empty(t, SplitPages(""))
}
