package tabelle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionale/estrazioni/internal/models"
)

func TestDirectionForCausale(t *testing.T) {
	tables := Default()

	assert.Equal(t, models.DirectionEntrata, tables.DirectionForCausale("18"))
	assert.Equal(t, models.DirectionEntrata, tables.DirectionForCausale("Z3"))
	assert.Equal(t, models.DirectionUscita, tables.DirectionForCausale("26"))
	assert.Equal(t, models.DirectionUscita, tables.DirectionForCausale("66"))
	assert.Equal(t, models.DirectionUnknown, tables.DirectionForCausale("99"))
	assert.Equal(t, models.DirectionUnknown, tables.DirectionForCausale(""))
}

func TestResolveDirection(t *testing.T) {
	tables := Default()

	tests := []struct {
		name        string
		causale     string
		description string
		expected    models.Direction
	}{
		{"Keyword only", "", "BONIFICO A VOSTRO FAVORE Rossi srl", models.DirectionEntrata},
		{"Causale only", "18", "Competenze quarto trimestre", models.DirectionEntrata},
		{"Keyword wins over causale", "18", "ADDEBITO canone annuo", models.DirectionUscita},
		{"Longest keyword wins", "", "BONIFICO A VOSTRO FAVORE per PAGAMENTO fattura", models.DirectionEntrata},
		{"Case-insensitive description", "", "accredito stipendio", models.DirectionEntrata},
		{"Neither rule fires", "99", "operazione diversa", models.DirectionUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tables.ResolveDirection(tc.causale, tc.description))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabelle.yaml")

	content := `causali_entrata:
  - "77"
keywords_uscita:
  - "TRATTENUTA"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	tables, err := Load(path)
	require.NoError(t, err)

	// overridden lists
	assert.Equal(t, []string{"77"}, tables.CausaliEntrata)
	assert.Equal(t, []string{"TRATTENUTA"}, tables.KeywordsUscita)

	// untouched lists fall back to the defaults
	assert.Equal(t, Default().CausaliUscita, tables.CausaliUscita)
	assert.Equal(t, Default().KeywordsEntrata, tables.KeywordsEntrata)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
