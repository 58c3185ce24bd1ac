// Package cedolino handles the payslip extraction command.
package cedolino

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"gestionale/estrazioni/cmd/root"
	"gestionale/estrazioni/internal/estrazione"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/pdftext"
)

// Cmd represents the cedolino command.
var Cmd = &cobra.Command{
	Use:   "cedolino",
	Short: "Estrae i cedolini paga da un documento",
	RunE:  run,
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

	assembler := estrazione.NewAssembler(nil, logger)
	if cfg := root.Cfg; cfg != nil {
		assembler.SetNetPayBounds(
			decimal.NewFromFloat(cfg.Estrazione.NettoMinimo),
			decimal.NewFromFloat(cfg.Estrazione.NettoMassimo))
	}
	result := assembler.Estrai(pages)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

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
