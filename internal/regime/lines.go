package regime

import (
	"fjacquet/balance-rli/internal/models"
)

// BuildIncomeLines resolves the income section of the worksheet from the
// ledger: table lines read the gains column, extras are appended after them.
func BuildIncomeLines(ledger *models.AccountLedger, tables AccountTables, extras []models.LineItem) []models.LineItem {
	return buildLines(ledger, tables.Income, extras, models.ColumnGains)
}

// BuildExpenseLines resolves the expense section; amounts come from the
// losses column.
func BuildExpenseLines(ledger *models.AccountLedger, tables AccountTables, extras []models.LineItem) []models.LineItem {
	return buildLines(ledger, tables.Expenses, extras, models.ColumnLosses)
}

// BuildDisallowedLines resolves the disallowed-expenses section; amounts
// come from the losses column.
func BuildDisallowedLines(ledger *models.AccountLedger, tables AccountTables, extras []models.LineItem) []models.LineItem {
	return buildLines(ledger, tables.Disallowed, extras, models.ColumnLosses)
}

func buildLines(ledger *models.AccountLedger, defs []LineDef, extras []models.LineItem, col models.Column) []models.LineItem {
	lines := make([]models.LineItem, 0, len(defs)+len(extras))
	for _, def := range defs {
		name := ledger.Name(def.Code)
		if name == "" {
			name = def.Name
		}
		lines = append(lines, models.LineItem{
			Code:     def.Code,
			Name:     name,
			Amount:   ledger.Value(def.Code, col),
			Sign:     def.Sign,
			FormCode: def.FormCode,
			InLedger: ledger.Has(def.Code),
		})
	}

	for _, extra := range extras {
		line := extra
		if !line.Manual {
			line.Amount = ledger.Value(line.Code, col)
		}
		if name := ledger.Name(line.Code); name != "" {
			line.Name = name
		}
		if line.Sign == "" {
			line.Sign = "+"
		}
		line.InLedger = ledger.Has(line.Code)
		lines = append(lines, line)
	}
	return lines
}

// Total sums a section's line amounts, honouring each line's sign.
func Total(lines []models.LineItem) int64 {
	var total int64
	for _, line := range lines {
		if line.Sign == "-" {
			total -= line.Amount
			continue
		}
		total += line.Amount
	}
	return total
}

// RemunerationTotal sums the lines belonging to the remuneration sub-group,
// which reports jointly under form code 1411.
func RemunerationTotal(lines []models.LineItem, tables AccountTables) int64 {
	group := make(map[string]bool, len(tables.RemunerationCodes))
	for _, code := range tables.RemunerationCodes {
		group[code] = true
	}

	var total int64
	for _, line := range lines {
		if group[line.Code] {
			total += line.Amount
		}
	}
	return total
}
