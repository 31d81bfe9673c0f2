package balance

import (
	"math"
	"sort"

	"fjacquet/balance-rli/internal/models"
)

// NearestColumn returns the numeric column whose center is closest to x.
// Exact-equidistant ties go to the lexicographically smallest column name,
// which keeps assignment deterministic regardless of map iteration order.
// ok is false when the spec holds no numeric columns at all.
func NearestColumn(x float64, spec models.ColumnSpec) (models.Column, bool) {
	numeric := spec.Numeric()
	if len(numeric) == 0 {
		return "", false
	}

	names := make([]string, 0, len(numeric))
	for col := range numeric {
		names = append(names, string(col))
	}
	sort.Strings(names)

	best := models.Column(names[0])
	bestDist := math.Abs(numeric[best] - x)
	for _, name := range names[1:] {
		col := models.Column(name)
		if d := math.Abs(numeric[col] - x); d < bestDist {
			best, bestDist = col, d
		}
	}
	return best, true
}

// AssignValues accumulates a classified row's value tokens into the ledger.
// Each token goes to its nearest numeric column; zero values carry no
// information and are never assigned.
func AssignValues(row ClassifiedRow, spec models.ColumnSpec, ledger *models.AccountLedger) {
	for _, val := range row.Values {
		if val.Amount <= 0 {
			continue
		}
		col, ok := NearestColumn(val.X, spec)
		if !ok {
			continue
		}
		ledger.Accumulate(row.Code, row.Name, col, val.Amount)
	}
}
