// Package extract handles the balance extraction command
package extract

import (
	"fjacquet/balance-rli/cmd/root"
	"fjacquet/balance-rli/internal/balance"
	"fjacquet/balance-rli/internal/pdfsource"
	"fjacquet/balance-rli/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the account ledger from a balance sheet PDF",
	Long: `Extract reads an eight-column balance sheet PDF, rebuilds the account
ledger from the positioned text and writes it to a CSV file, one row
per account.`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	if root.SharedFlags.Input == "" {
		logger.Error("No input file specified, use --input")
		return
	}
	if root.SharedFlags.Output == "" {
		logger.Error("No output file specified, use --output")
		return
	}

	src := pdfsource.NewFileSource(root.SharedFlags.Input, logger)
	extractor := balance.NewExtractor(logger, root.Cfg.Extraction.RowBand)

	ledger, info, err := extractor.Extract(src)
	if err != nil {
		root.Log.Fatalf("Error extracting balance: %v", err)
	}

	if !info.IsEmpty() {
		root.Log.Infof("Company: %s (%s), period %s", info.LegalName, info.TaxID, info.Period)
	}

	if err := report.WriteLedgerCSV(ledger, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing ledger CSV: %v", err)
	}
	root.Log.Info("Balance extraction completed successfully!")
}
