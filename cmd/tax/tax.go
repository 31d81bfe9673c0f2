// Package tax handles the tax calculation command
package tax

import (
	"path/filepath"
	"strings"

	"fjacquet/balance-rli/cmd/root"
	"fjacquet/balance-rli/internal/balance"
	"fjacquet/balance-rli/internal/models"
	"fjacquet/balance-rli/internal/pdfsource"
	"fjacquet/balance-rli/internal/regime"
	"fjacquet/balance-rli/internal/report"

	"github.com/spf13/cobra"
)

var (
	regimeFlag    string
	modeFlag      string
	ppm           int64
	withdrawals   int64
	fines         int64
	historicalTax int64
	ufQuantity    int64
	ufValue       int64
	extrasFile    string
	tablesFile    string
)

// Cmd represents the tax command
var Cmd = &cobra.Command{
	Use:   "tax",
	Short: "Compute the first-category tax from a balance sheet PDF",
	Long: `Tax extracts the account ledger from a balance sheet PDF, builds the
income, expense and disallowed-expense worksheet, and computes the
régimen 14 D N°3 first-category tax in the selected mode. It writes
the worksheet and a calculation summary next to the output file.`,
	Run: taxFunc,
}

func init() {
	Cmd.Flags().StringVar(&regimeFlag, "regime", string(regime.ProPymeTransparente), "Tax regime (14d3 or 14a)")
	Cmd.Flags().StringVar(&modeFlag, "mode", string(regime.NoIncentive), "Calculation mode (no-incentive or with-incentive)")
	Cmd.Flags().Int64Var(&ppm, "ppm", 0, "Provisional monthly payments already paid")
	Cmd.Flags().Int64Var(&withdrawals, "withdrawals", 0, "Partner withdrawals of the period")
	Cmd.Flags().Int64Var(&fines, "fines", 0, "Prior-period fines and interest")
	Cmd.Flags().Int64Var(&historicalTax, "historical-tax", 0, "Prior-period first-category tax")
	Cmd.Flags().Int64Var(&ufQuantity, "uf-quantity", 0, "Savings-incentive cap in UF (0 uses the configured value)")
	Cmd.Flags().Int64Var(&ufValue, "uf-value", 0, "Peso value of one UF (0 uses the configured value)")
	Cmd.Flags().StringVar(&extrasFile, "extras", "", "CSV file with extra worksheet lines")
	Cmd.Flags().StringVar(&tablesFile, "tables", "", "YAML file overriding the worksheet account tables")
}

func taxFunc(cmd *cobra.Command, args []string) {
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

	tables, err := loadTables()
	if err != nil {
		root.Log.Fatalf("Error loading account tables: %v", err)
	}

	extras, err := loadExtras()
	if err != nil {
		root.Log.Fatalf("Error reading extra worksheet lines: %v", err)
	}

	income := regime.BuildIncomeLines(ledger, tables, extras["ingresos"])
	expenses := regime.BuildExpenseLines(ledger, tables, extras["egresos"])
	disallowed := regime.BuildDisallowedLines(ledger, tables, nil)

	inputs := regime.Inputs{
		Income:              regime.Total(income),
		Expenses:            regime.Total(expenses),
		Disallowed:          regime.Total(disallowed),
		ProvisionalPayments: ppm,
		Withdrawals:         withdrawals,
		HistoricalFines:     fines,
		HistoricalTax:       historicalTax,
		SavingsLimit:        savingsLimit(),
	}

	res, err := regime.Calculate(regime.Regime(regimeFlag), regime.Mode(modeFlag), inputs)
	if err != nil {
		root.Log.Fatalf("Error computing tax: %v", err)
	}

	if remun := regime.RemunerationTotal(expenses, tables); remun > 0 {
		root.Log.Infof("Remuneraciones (F22 1411): %s", models.FormatAmount(remun))
	}

	worksheet := report.BuildWorksheet(income, expenses, disallowed)
	if err := report.WriteWorksheetCSV(worksheet, sidecarPath(root.SharedFlags.Output, "worksheet")); err != nil {
		root.Log.Fatalf("Error writing worksheet CSV: %v", err)
	}

	summary := report.BuildSummary(regime.Mode(modeFlag), res)
	if err := report.WriteSummaryCSV(summary, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing summary CSV: %v", err)
	}

	for _, row := range summary {
		root.Log.Infof("%-32s %s", row.Concept, row.Amount)
	}
	root.Log.Info("Tax calculation completed successfully!")
}

func loadTables() (regime.AccountTables, error) {
	path := tablesFile
	if path == "" {
		path = root.Cfg.Tax.AccountTables
	}
	if path == "" {
		return regime.DefaultTables(), nil
	}
	return regime.LoadTables(path)
}

// loadExtras reads the extras file and splits the lines by worksheet
// section. Lines whose code starts with 3 belong to income, the rest to
// expenses.
func loadExtras() (map[string][]models.LineItem, error) {
	if extrasFile == "" {
		return nil, nil
	}
	lines, err := report.ReadExtraLines(extrasFile)
	if err != nil {
		return nil, err
	}

	sections := make(map[string][]models.LineItem)
	for _, line := range lines {
		section := "egresos"
		if strings.HasPrefix(line.Code, "3") {
			section = "ingresos"
		}
		sections[section] = append(sections[section], line)
	}
	return sections, nil
}

func savingsLimit() int64 {
	quantity := ufQuantity
	if quantity <= 0 {
		quantity = root.Cfg.Tax.UFQuantity
	}
	value := ufValue
	if value <= 0 {
		value = root.Cfg.Tax.UFValue
	}
	return regime.SavingsLimitAmount(quantity, value)
}

func sidecarPath(out, suffix string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_" + suffix + ext
}
