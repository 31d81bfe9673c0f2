// Package root contains the root command for the application
package root

import (
	"fjacquet/balance-rli/internal/config"
	"fjacquet/balance-rli/internal/logging"
	"fjacquet/balance-rli/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all commands
	// after PersistentPreRun.
	Cfg = &config.Config{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "balance-rli",
		Short: "A CLI tool to extract account balances from PDF balance sheets and compute the 14 D N°3 tax.",
		Long: `balance-rli reads an eight-column balance sheet PDF, rebuilds the
account ledger from the positioned text and computes the régimen
Pro-Pyme Transparente (14 D N°3) first-category tax, with or without
the savings-incentive deduction.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to balance-rli!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg

			Log = config.ConfigureLogging(cfg)
			logging.SetDefaultLogger(logging.NewLogrusAdapterFromLogger(Log))

			report.SetLogger(GetLogger())
			report.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input PDF file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
}
