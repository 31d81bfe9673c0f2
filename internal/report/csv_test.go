package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/balance-rli/internal/models"
	"fjacquet/balance-rli/internal/parsererror"
	"fjacquet/balance-rli/internal/regime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLedgerCSV(t *testing.T) {
	ledger := models.NewAccountLedger()
	ledger.Accumulate("300101", "VENTAS", models.ColumnGains, 1_000_000)
	ledger.Accumulate("300101", "VENTAS", models.ColumnCredits, 1_000_000)
	ledger.Accumulate("110101", "CAJA", models.ColumnAssets, 250_000)

	path := filepath.Join(t.TempDir(), "out", "ledger.csv")
	require.NoError(t, WriteLedgerCSV(ledger, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "code,account_name,debits,credits,debtor_balance,creditor_balance,assets,liabilities,losses,gains", lines[0])
	// Rows come out in code order.
	assert.True(t, strings.HasPrefix(lines[1], "110101,CAJA,"))
	assert.True(t, strings.HasPrefix(lines[2], "300101,VENTAS,"))
	assert.True(t, strings.HasSuffix(lines[2], ",1000000"))
}

func TestWriteLedgerCSVNil(t *testing.T) {
	err := WriteLedgerCSV(nil, filepath.Join(t.TempDir(), "ledger.csv"))
	assert.Error(t, err)
}

func TestReadExtraLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extras.csv")
	content := "code,name,amount,f22,manual\n" +
		"410106,HONORARIOS,$ 1.234.567,1412,true\n" +
		"430102,MULTAS,,1422,false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	lines, err := ReadExtraLines(path)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "410106", lines[0].Code)
	assert.Equal(t, int64(1_234_567), lines[0].Amount)
	assert.True(t, lines[0].Manual)
	assert.Equal(t, "430102", lines[1].Code)
	assert.Zero(t, lines[1].Amount)
	assert.False(t, lines[1].Manual)
}

func TestReadExtraLinesMissingFile(t *testing.T) {
	_, err := ReadExtraLines(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadExtraLinesRowWithoutCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extras.csv")
	content := "code,name,amount,f22,manual\n" +
		",SIN CODIGO,100,,true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := ReadExtraLines(path)
	require.Error(t, err)
	var extractErr *parsererror.DataExtractionError
	assert.ErrorAs(t, err, &extractErr)
}

func TestBuildWorksheetSections(t *testing.T) {
	income := []models.LineItem{{Code: "300101", Name: "VENTAS", Amount: 1_000_000, FormCode: "1600", InLedger: true}}
	expenses := []models.LineItem{{Code: "400101", Name: "COMPRAS", Amount: 300_000}}

	rows := BuildWorksheet(income, expenses, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "ingresos", rows[0].Section)
	assert.Equal(t, "$ 1.000.000", rows[0].Amount)
	assert.Equal(t, "egresos", rows[1].Section)
}

func TestBuildSummaryNoIncentive(t *testing.T) {
	res := models.CalculationResult{
		TotalIncome:         1_000_000,
		TotalExpenses:       400_000,
		ProvisionalPayments: 50_000,
		TaxableBase:         600_000,
		TaxNoIncentive:      75_000,
		BalanceNoIncentive:  25_000,
	}

	rows := BuildSummary(regime.NoIncentive, res)

	last := rows[len(rows)-1]
	assert.Equal(t, "Saldo", last.Concept)
	assert.Equal(t, "$ 25.000", last.Amount)
}

func TestBuildSummaryWithIncentiveShowsDeductionChain(t *testing.T) {
	res := models.CalculationResult{
		SubBase:              600_000,
		InvestedBase:         500_000,
		HalfInvested:         250_000,
		Deduction:            250_000,
		TaxWithIncentive:     31_250,
		ProvisionalPayments:  50_000,
		BalanceWithIncentive: -18_750,
	}

	rows := BuildSummary(regime.WithIncentive, res)

	concepts := make([]string, len(rows))
	for i, r := range rows {
		concepts[i] = r.Concept
	}
	assert.Contains(t, concepts, "Base invertida")
	assert.Contains(t, concepts, "Deduccion")
	assert.Equal(t, "$ -18.750", rows[len(rows)-1].Amount)
}

func TestWriteSummaryCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	rows := []SummaryRow{{Concept: "Saldo", Amount: "$ 25.000"}}

	require.NoError(t, WriteSummaryCSV(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "concept,amount")
	assert.Contains(t, string(data), "Saldo")
}
