// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gestionale/estrazioni/internal/config"
	"gestionale/estrazioni/internal/logging"
)

// SharedFlags are the flags common to the commands.
type SharedFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Flags holds the parsed common flags.
	Flags SharedFlags

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "estrazioni",
		Short: "Estrazione documenti e riconciliazione F24.",
		Long: `estrazioni converte il testo di estratti conto e cedolini in record
strutturati e riconcilia le deleghe F24 con i movimenti bancari.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg
		},
	}
)

// Init wires the persistent flags. Called once from main before Execute.
func Init() {
	Cmd.PersistentFlags().StringVarP(&Flags.Input, "input", "i", "", "input file")
	Cmd.PersistentFlags().StringVarP(&Flags.Output, "output", "o", "", "output file")
}

// GetLogger returns the commands' logger behind the logging facade.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
