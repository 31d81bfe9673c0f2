package report

import (
	"fjacquet/balance-rli/internal/logging"
	"fjacquet/balance-rli/internal/models"
	"fjacquet/balance-rli/internal/regime"
)

// WorksheetRow is the CSV shape of one worksheet line, tagged with the
// section it belongs to.
type WorksheetRow struct {
	Section  string `csv:"section"`
	Code     string `csv:"code"`
	Name     string `csv:"name"`
	FormCode string `csv:"f22"`
	Amount   string `csv:"amount"`
	InLedger bool   `csv:"in_ledger"`
}

// SummaryRow is one concept/amount pair of the calculation summary.
type SummaryRow struct {
	Concept string `csv:"concept"`
	Amount  string `csv:"amount"`
}

// BuildWorksheet flattens the three worksheet sections into CSV rows.
func BuildWorksheet(income, expenses, disallowed []models.LineItem) []WorksheetRow {
	rows := make([]WorksheetRow, 0, len(income)+len(expenses)+len(disallowed))
	appendSection := func(section string, lines []models.LineItem) {
		for _, line := range lines {
			rows = append(rows, WorksheetRow{
				Section:  section,
				Code:     line.Code,
				Name:     line.Name,
				FormCode: line.FormCode,
				Amount:   models.FormatAmount(line.Amount),
				InLedger: line.InLedger,
			})
		}
	}
	appendSection("ingresos", income)
	appendSection("egresos", expenses)
	appendSection("gastos rechazados", disallowed)
	return rows
}

// WriteWorksheetCSV writes the worksheet rows to a CSV file.
func WriteWorksheetCSV(rows []WorksheetRow, csvFile string) error {
	if err := writeCSVFile(rows, csvFile); err != nil {
		return err
	}
	log.Info("Successfully wrote worksheet to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// BuildSummary renders the calculation result of one mode as concept/amount
// rows, in the order the figures are derived.
func BuildSummary(mode regime.Mode, res models.CalculationResult) []SummaryRow {
	rows := []SummaryRow{
		{Concept: "Ingresos", Amount: models.FormatAmount(res.TotalIncome)},
		{Concept: "Egresos", Amount: models.FormatAmount(res.TotalExpenses)},
		{Concept: "Gastos rechazados", Amount: models.FormatAmount(res.TotalDisallowed)},
	}

	switch mode {
	case regime.WithIncentive:
		rows = append(rows,
			SummaryRow{Concept: "Base antes de incentivo", Amount: models.FormatAmount(res.SubBase)},
			SummaryRow{Concept: "Retiros", Amount: models.FormatAmount(res.Withdrawals)},
			SummaryRow{Concept: "Multas ejercicio anterior", Amount: models.FormatAmount(res.HistoricalFines)},
			SummaryRow{Concept: "Impuesto ejercicio anterior", Amount: models.FormatAmount(res.HistoricalTax)},
			SummaryRow{Concept: "Base invertida", Amount: models.FormatAmount(res.InvestedBase)},
			SummaryRow{Concept: "50% base invertida", Amount: models.FormatAmount(res.HalfInvested)},
			SummaryRow{Concept: "Tope incentivo al ahorro", Amount: models.FormatAmount(res.SavingsLimit)},
			SummaryRow{Concept: "Deduccion", Amount: models.FormatAmount(res.Deduction)},
			SummaryRow{Concept: "Impuesto primera categoria", Amount: models.FormatAmount(res.TaxWithIncentive)},
			SummaryRow{Concept: "PPM", Amount: models.FormatAmount(res.ProvisionalPayments)},
			SummaryRow{Concept: "Saldo", Amount: models.FormatAmount(res.BalanceWithIncentive)},
		)
	default:
		rows = append(rows,
			SummaryRow{Concept: "Base imponible", Amount: models.FormatAmount(res.TaxableBase)},
			SummaryRow{Concept: "Impuesto primera categoria", Amount: models.FormatAmount(res.TaxNoIncentive)},
			SummaryRow{Concept: "PPM", Amount: models.FormatAmount(res.ProvisionalPayments)},
			SummaryRow{Concept: "Saldo", Amount: models.FormatAmount(res.BalanceNoIncentive)},
		)
	}
	return rows
}

// WriteSummaryCSV writes the calculation summary to a CSV file.
func WriteSummaryCSV(rows []SummaryRow, csvFile string) error {
	if err := writeCSVFile(rows, csvFile); err != nil {
		return err
	}
	log.Info("Successfully wrote calculation summary to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile})
	return nil
}
