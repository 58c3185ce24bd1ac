// Package estratto handles the bank-statement extraction command.
package estratto

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gestionale/estrazioni/cmd/root"
	"gestionale/estrazioni/internal/common"
	"gestionale/estrazioni/internal/estrazione"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/pdftext"
	"gestionale/estrazioni/internal/tabelle"
)

// Cmd represents the estratto command.
var Cmd = &cobra.Command{
	Use:   "estratto",
	Short: "Estrae i movimenti da un estratto conto",
	Long: `Estrae i movimenti da un estratto conto (PDF o testo già estratto),
stampa il risultato JSON e, con --output, salva le transazioni in CSV.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	logger := root.GetLogger()
	if root.Flags.Input == "" {
		return fmt.Errorf("--input is required")
	}

	pages, err := loadPages(root.Flags.Input)
	if err != nil {
		return err
	}

	tables := loadTables()
	assembler := estrazione.NewAssembler(tables, logger)
	result := assembler.Estrai(pages)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if root.Flags.Output != "" && len(result.Transactions) > 0 {
		if err := common.WriteTransactionsToCSV(result.Transactions, root.Flags.Output); err != nil {
			return err
		}
	}
	return nil
}

// loadPages reads the input as PDF through pdftotext, or as already-extracted
// text when the extension says so.
func loadPages(path string) ([]models.RawPage, error) {
	if strings.HasSuffix(strings.ToLower(path), ".txt") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return pdftext.SplitPages(string(data)), nil
	}
	return pdftext.NewPdftotextExtractor().ExtractPages(path)
}

func loadTables() *tabelle.Tables {
	if root.Cfg != nil && root.Cfg.Tabelle.File != "" {
		if t, err := tabelle.Load(root.Cfg.Tabelle.File); err == nil {
			return t
		}
		root.Log.Warnf("Could not load tables from %s, using defaults", root.Cfg.Tabelle.File)
	}
	return tabelle.Default()
}
