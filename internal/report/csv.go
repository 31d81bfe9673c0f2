// Package report writes extraction and calculation results to CSV files and
// reads the manual worksheet-line files back in.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/balance-rli/internal/logging"
	"fjacquet/balance-rli/internal/models"
	"fjacquet/balance-rli/internal/parsererror"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the CSV field separator used for all output files. It can be
// configured via the centralized config.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// LedgerRow is the CSV shape of one extracted account.
type LedgerRow struct {
	Code            string `csv:"code"`
	Name            string `csv:"account_name"`
	Debits          int64  `csv:"debits"`
	Credits         int64  `csv:"credits"`
	DebtorBalance   int64  `csv:"debtor_balance"`
	CreditorBalance int64  `csv:"creditor_balance"`
	Assets          int64  `csv:"assets"`
	Liabilities     int64  `csv:"liabilities"`
	Losses          int64  `csv:"losses"`
	Gains           int64  `csv:"gains"`
}

// WriteLedgerCSV writes the ledger's accounts to a CSV file, one row per
// account in code order.
func WriteLedgerCSV(ledger *models.AccountLedger, csvFile string) error {
	if ledger == nil {
		return fmt.Errorf("cannot write nil ledger to CSV")
	}

	rows := make([]LedgerRow, 0, ledger.Len())
	for _, code := range ledger.Codes() {
		rows = append(rows, LedgerRow{
			Code:            code,
			Name:            ledger.Name(code),
			Debits:          ledger.Value(code, models.ColumnDebits),
			Credits:         ledger.Value(code, models.ColumnCredits),
			DebtorBalance:   ledger.Value(code, models.ColumnDebtorBalance),
			CreditorBalance: ledger.Value(code, models.ColumnCreditorBalance),
			Assets:          ledger.Value(code, models.ColumnAssets),
			Liabilities:     ledger.Value(code, models.ColumnLiabilities),
			Losses:          ledger.Value(code, models.ColumnLosses),
			Gains:           ledger.Value(code, models.ColumnGains),
		})
	}

	if err := writeCSVFile(rows, csvFile); err != nil {
		return err
	}

	log.Info("Successfully wrote ledger to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// ExtraRow is the CSV shape of a user-supplied worksheet line. A manual row
// carries its own amount; a non-manual row only names the account and the
// amount is read from the ledger.
type ExtraRow struct {
	Code     string `csv:"code"`
	Name     string `csv:"name"`
	Amount   string `csv:"amount"`
	FormCode string `csv:"f22"`
	Manual   bool   `csv:"manual"`
}

// ReadExtraLines reads user-supplied worksheet lines from a CSV file.
func ReadExtraLines(filePath string) ([]models.LineItem, error) {
	log.Info("Reading extra worksheet lines",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []ExtraRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	lines := make([]models.LineItem, 0, len(rows))
	for i, row := range rows {
		if row.Code == "" {
			return nil, &parsererror.DataExtractionError{
				FilePath:  filePath,
				FieldName: "code",
				Reason:    fmt.Sprintf("row %d has no account code", i+1),
			}
		}
		lines = append(lines, models.LineItem{
			Code:     row.Code,
			Name:     row.Name,
			Amount:   models.ParseAmount(row.Amount),
			FormCode: row.FormCode,
			Manual:   row.Manual,
		})
	}
	return lines, nil
}

// writeCSVFile marshals rows into csvFile, creating the parent directory
// when needed.
func writeCSVFile[TRow any](rows []TRow, csvFile string) error {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
