// Package scadenze handles the reconciliation and deadline-alert command.
package scadenze

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gestionale/estrazioni/cmd/root"
	"gestionale/estrazioni/internal/common"
	"gestionale/estrazioni/internal/f24"
	"gestionale/estrazioni/internal/logging"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/parsererror"
	"gestionale/estrazioni/internal/riconcilia"
	"gestionale/estrazioni/internal/store"
)

var movimentiFile string

// Cmd represents the scadenze command.
var Cmd = &cobra.Command{
	Use:   "scadenze",
	Short: "Riconcilia gli F24 con i movimenti e calcola gli avvisi di scadenza",
	Long: `Carica le deleghe F24 da un file JSON (--input) e i movimenti bancari da
un CSV (--movimenti), esegue la riconciliazione e stampa avvisi e riepilogo.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVar(&movimentiFile, "movimenti", "", "bank movements CSV file")
}

type report struct {
	Riconciliati []riconcilia.MatchOutcome `json:"riconciliati"`
	Avvisi       []models.Alert            `json:"avvisi"`
	Riepilogo    models.Dashboard          `json:"riepilogo"`
}

func run(cmd *cobra.Command, args []string) error {
	logger := root.GetLogger()
	if root.Flags.Input == "" || movimentiFile == "" {
		return fmt.Errorf("--input and --movimenti are required")
	}

	ctx := context.Background()
	st := store.NewMemory()
	filings := riconcilia.FilingRepository{Store: st}
	movements := riconcilia.MovementRepository{Store: st}

	cfg := riconcilia.ConfigFrom(root.Cfg)

	loaded, err := loadFilings(root.Flags.Input)
	if err != nil {
		return err
	}
	for i := range loaded {
		// amendment detection against the filings ingested before this one
		if loaded[i].Supersedes == "" {
			if corr := f24.Ingest(&loaded[i], loaded[:i], cfg.OverlapThreshold); corr.IsAmendment {
				logger.Info("Detected ravvedimento",
					logging.Field{Key: logging.FieldFiling, Value: loaded[i].ID},
					logging.Field{Key: "sostituisce", Value: corr.OriginalID})
			}
		}
		if err := filings.Insert(ctx, loaded[i]); err != nil {
			return err
		}
	}

	movs, err := common.ReadMovements(movimentiFile)
	if err != nil {
		return err
	}
	for _, m := range movs {
		if err := movements.Insert(ctx, m); err != nil {
			return err
		}
	}

	engine := riconcilia.NewEngine(st, cfg, logger)

	outcomes, err := engine.Run(ctx)
	if err != nil {
		return err
	}
	alerts, err := engine.Alerts(ctx, time.Now())
	if err != nil {
		return err
	}
	dashboard, err := engine.Dashboard(ctx)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report{
		Riconciliati: outcomes,
		Avvisi:       alerts,
		Riepilogo:    dashboard,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func loadFilings(path string) ([]models.TaxFiling, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var filings []models.TaxFiling
	if err := json.Unmarshal(data, &filings); err != nil {
		return nil, &parsererror.InvalidFormatError{
			Source:         path,
			ExpectedFormat: "JSON array of F24",
			Msg:            err.Error(),
		}
	}
	return filings, nil
}
