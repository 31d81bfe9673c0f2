// Package balance implements the layout-inference extraction engine: it
// turns loosely positioned text tokens into an account ledger by clustering
// tokens into rows, inferring column positions, classifying rows and
// assigning numeric values to their nearest column.
package balance

import (
	"sort"

	"fjacquet/balance-rli/internal/models"
)

// Row is a horizontal band of tokens, ordered left to right.
type Row struct {
	Band   float64
	Tokens []models.PositionedToken
}

// IndexRows clusters the tokens of one page into rows by quantizing the
// vertical position into bands of the given size. Font metrics make raw
// coordinates jitter slightly; the band absorbs that without merging
// genuinely distinct lines. Rows come back ordered top to bottom, tokens
// within a row left to right. An empty page yields no rows.
func IndexRows(tokens []models.PositionedToken, band float64) []Row {
	if band <= 0 {
		band = 3
	}

	buckets := make(map[float64][]models.PositionedToken)
	for _, tok := range tokens {
		key := quantize(tok.Top, band)
		buckets[key] = append(buckets[key], tok)
	}

	rows := make([]Row, 0, len(buckets))
	for key, toks := range buckets {
		sort.SliceStable(toks, func(i, j int) bool {
			return toks[i].X0 < toks[j].X0
		})
		rows = append(rows, Row{Band: key, Tokens: toks})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Band < rows[j].Band
	})
	return rows
}

func quantize(top, band float64) float64 {
	n := top / band
	// Round half away from zero; tops are non-negative in practice.
	return float64(int64(n+0.5)) * band
}
