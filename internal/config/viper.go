package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Riconciliazione struct {
		// TolleranzaMinima is the fixed floor of the match tolerance, in euro.
		TolleranzaMinima float64 `mapstructure:"tolleranza_minima" yaml:"tolleranza_minima"`
		// TolleranzaPercentuale is the percentage component (0.005 = 0.5%).
		TolleranzaPercentuale float64 `mapstructure:"tolleranza_percentuale" yaml:"tolleranza_percentuale"`
		// GiorniPreavviso bounds the IN_SCADENZA alert window.
		GiorniPreavviso int `mapstructure:"giorni_preavviso" yaml:"giorni_preavviso"`
		// SogliaCorrelazione is the amendment base-code overlap threshold.
		SogliaCorrelazione float64 `mapstructure:"soglia_correlazione" yaml:"soglia_correlazione"`
	} `mapstructure:"riconciliazione" yaml:"riconciliazione"`

	Tabelle struct {
		// File optionally overrides the compiled-in causale/keyword tables.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"tabelle" yaml:"tabelle"`

	Estrazione struct {
		// NettoMinimo/NettoMassimo bound the payslip net-pay heuristic.
		NettoMinimo  float64 `mapstructure:"netto_minimo" yaml:"netto_minimo"`
		NettoMassimo float64 `mapstructure:"netto_massimo" yaml:"netto_massimo"`
	} `mapstructure:"estrazione" yaml:"estrazione"`
}

// InitializeConfig loads configuration with the usual precedence: defaults,
// then an optional YAML file, then GESTIONALE_-prefixed environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.gestionale")
	v.AddConfigPath(".gestionale")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GESTIONALE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// keep going with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("riconciliazione.tolleranza_minima", 1.00)
	v.SetDefault("riconciliazione.tolleranza_percentuale", 0.005)
	v.SetDefault("riconciliazione.giorni_preavviso", 7)
	v.SetDefault("riconciliazione.soglia_correlazione", 0.5)

	v.SetDefault("estrazione.netto_minimo", 200.00)
	v.SetDefault("estrazione.netto_massimo", 10000.00)
}

func validateConfig(c *Config) error {
	if c.Riconciliazione.TolleranzaMinima < 0 {
		return fmt.Errorf("tolleranza_minima must not be negative")
	}
	if c.Riconciliazione.TolleranzaPercentuale < 0 || c.Riconciliazione.TolleranzaPercentuale > 1 {
		return fmt.Errorf("tolleranza_percentuale must be between 0 and 1")
	}
	if c.Riconciliazione.SogliaCorrelazione <= 0 || c.Riconciliazione.SogliaCorrelazione > 1 {
		return fmt.Errorf("soglia_correlazione must be in (0, 1]")
	}
	if c.Riconciliazione.GiorniPreavviso < 0 {
		return fmt.Errorf("giorni_preavviso must not be negative")
	}
	return nil
}
