package balance

import (
	"strings"

	"fjacquet/balance-rli/internal/models"
)

// Header labels as printed on the balance, uppercased, mapped to their
// semantic column.
var headerLabels = map[string]models.Column{
	"CODIGO":    models.ColumnCode,
	"CUENTA":    models.ColumnAccountName,
	"DEBITOS":   models.ColumnDebits,
	"CREDITOS":  models.ColumnCredits,
	"DEUDOR":    models.ColumnDebtorBalance,
	"ACREEDOR":  models.ColumnCreditorBalance,
	"ACTIVOS":   models.ColumnAssets,
	"PASIVOS":   models.ColumnLiabilities,
	"PERDIDAS":  models.ColumnLosses,
	"GANANCIAS": models.ColumnGains,
}

// Proportional x-center of each numeric column as a fraction of page width,
// calibrated for the standard A4/letter 8-column balance layout.
var fallbackFractions = map[models.Column]float64{
	models.ColumnDebits:          0.33,
	models.ColumnCredits:         0.42,
	models.ColumnDebtorBalance:   0.51,
	models.ColumnCreditorBalance: 0.59,
	models.ColumnAssets:          0.67,
	models.ColumnLiabilities:     0.73,
	models.ColumnLosses:          0.82,
	models.ColumnGains:           0.92,
}

// minHeaderColumns is the minimum number of numeric columns Strategy A must
// match before its result is trusted over the proportional fallback.
const minHeaderColumns = 4

// Column-mapping strategy names, for logging.
const (
	StrategyHeader       = "header"
	StrategyProportional = "proportional"
)

// MapColumns infers the x-center of each numeric column on a page.
//
// Strategy A scans all tokens whose uppercased text exactly matches a header
// label and records the label's x-center under its semantic column. When
// fewer than four numeric columns match that way (page breaks, re-flowed
// headers, OCR noise), the partial matches are discarded and every column
// center is computed as a fixed fraction of the page width instead. The
// fallback is deterministic and content-independent.
func MapColumns(tokens []models.PositionedToken, pageWidth float64) (models.ColumnSpec, string) {
	spec := make(models.ColumnSpec)
	for _, tok := range tokens {
		col, ok := headerLabels[strings.ToUpper(tok.Text)]
		if !ok {
			continue
		}
		spec[col] = tok.XCenter()
	}

	if len(spec.Numeric()) >= minHeaderColumns {
		return spec, StrategyHeader
	}

	spec = make(models.ColumnSpec, len(fallbackFractions))
	for col, fraction := range fallbackFractions {
		spec[col] = pageWidth * fraction
	}
	return spec, StrategyProportional
}
