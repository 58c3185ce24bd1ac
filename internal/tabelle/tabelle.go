// Package tabelle holds the lookup tables used to resolve a transaction's
// direction: the causale-code table and the description keyword lists. The
// compiled-in defaults can be overridden from a YAML file.
package tabelle

import (
	"os"

	"gopkg.in/yaml.v3"

	"gestionale/estrazioni/internal/models"
)

// Tables is the full direction-resolution configuration.
type Tables struct {
	// CausaliEntrata and CausaliUscita map known ABI causale codes to a
	// default direction.
	CausaliEntrata []string `yaml:"causali_entrata"`
	CausaliUscita  []string `yaml:"causali_uscita"`
	// Keyword evidence in the description always overrides the causale table.
	KeywordsEntrata []string `yaml:"keywords_entrata"`
	KeywordsUscita  []string `yaml:"keywords_uscita"`
}

// Default returns the compiled-in tables.
func Default() *Tables {
	return &Tables{
		CausaliEntrata: []string{
			"18", // competenze / interessi creditori
			"48", // bonifico a vostro favore
			"43", // versamento contante
			"64", // giroconto in accredito
			"Z3", // accredito POS
		},
		CausaliUscita: []string{
			"26", // utenze
			"16", // commissioni e spese
			"19", // imposta di bollo
			"66", // pagamento F24 / deleghe fiscali
			"27", // prelievo ATM
			"34", // pagamento POS
			"50", // assegno
		},
		KeywordsEntrata: []string{
			"VERSAMENTO",
			"ACCREDITO",
			"BONIFICO A VOSTRO FAVORE",
			"BONIFICO IN ENTRATA",
			"INTERESSI CREDITORI",
			"GIROCONTO IN ENTRATA",
			"RIMBORSO",
			"INCASSO",
		},
		KeywordsUscita: []string{
			"ADDEBITO",
			"COMMISSIONE",
			"COMMISSIONI",
			"PRELIEVO",
			"PAGAMENTO",
			"CANONE",
			"IMPOSTA DI BOLLO",
			"DELEGA F24",
			"UTENZE",
			"SPESE",
		},
	}
}

// Load reads tables from a YAML file, falling back to the defaults for any
// list the file leaves empty.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	def := Default()
	if len(t.CausaliEntrata) == 0 {
		t.CausaliEntrata = def.CausaliEntrata
	}
	if len(t.CausaliUscita) == 0 {
		t.CausaliUscita = def.CausaliUscita
	}
	if len(t.KeywordsEntrata) == 0 {
		t.KeywordsEntrata = def.KeywordsEntrata
	}
	if len(t.KeywordsUscita) == 0 {
		t.KeywordsUscita = def.KeywordsUscita
	}
	return &t, nil
}

// DirectionForCausale resolves the default direction for a causale code.
func (t *Tables) DirectionForCausale(code string) models.Direction {
	for _, c := range t.CausaliEntrata {
		if c == code {
			return models.DirectionEntrata
		}
	}
	for _, c := range t.CausaliUscita {
		if c == code {
			return models.DirectionUscita
		}
	}
	return models.DirectionUnknown
}
