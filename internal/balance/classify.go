package balance

import (
	"regexp"
	"strings"

	"fjacquet/balance-rli/internal/models"
)

// numericPattern matches value tokens: digits and dot thousand separators
// only.
var numericPattern = regexp.MustCompile(`^[\d.]+$`)

// ValueToken is a candidate numeric value found on a classified row.
type ValueToken struct {
	X      float64
	Amount int64
}

// ClassifiedRow is an account row: its 6-digit code, the account name and
// the candidate value tokens.
type ClassifiedRow struct {
	Code   string
	Name   string
	Values []ValueToken
}

// ClassifyRow locates the account code, the name span and the candidate
// value tokens within a row. The first token matching the strict 6-digit
// pattern anchors the row; the name is the run of non-numeric tokens
// immediately after the anchor, joined with single spaces; candidate values
// are every numeric token anywhere on the row, carrying its x-center and
// parsed integer amount. Rows without a code anchor are not account rows
// (page headers, subtotals, separators) and report ok=false.
func ClassifyRow(row Row) (ClassifiedRow, bool) {
	codeIdx := -1
	var classified ClassifiedRow
	for i, tok := range row.Tokens {
		if models.IsAccountCode(tok.Text) {
			classified.Code = tok.Text
			codeIdx = i
			break
		}
	}
	if codeIdx < 0 {
		return ClassifiedRow{}, false
	}

	var nameParts []string
	for i := codeIdx + 1; i < len(row.Tokens); i++ {
		if numericPattern.MatchString(row.Tokens[i].Text) {
			break
		}
		nameParts = append(nameParts, row.Tokens[i].Text)
	}
	classified.Name = strings.Join(nameParts, " ")

	for i, tok := range row.Tokens {
		if i == codeIdx {
			// The code anchor matches the numeric pattern but is not a value.
			continue
		}
		if !numericPattern.MatchString(tok.Text) {
			continue
		}
		classified.Values = append(classified.Values, ValueToken{
			X:      tok.XCenter(),
			Amount: models.ParseAmount(tok.Text),
		})
	}

	return classified, true
}
