package models

// Column identifies one semantic column of the 8-column balance layout.
type Column string

const (
	ColumnDebits          Column = "debits"
	ColumnCredits         Column = "credits"
	ColumnDebtorBalance   Column = "debtor_balance"
	ColumnCreditorBalance Column = "creditor_balance"
	ColumnAssets          Column = "assets"
	ColumnLiabilities     Column = "liabilities"
	ColumnLosses          Column = "losses"
	ColumnGains           Column = "gains"

	// Non-numeric anchors. They can be located on a page but are never
	// targets of value assignment.
	ColumnCode        Column = "code"
	ColumnAccountName Column = "account_name"
)

// NumericColumns lists the eight value-bearing columns in their left-to-right
// order on the printed balance.
func NumericColumns() []Column {
	return []Column{
		ColumnDebits,
		ColumnCredits,
		ColumnDebtorBalance,
		ColumnCreditorBalance,
		ColumnAssets,
		ColumnLiabilities,
		ColumnLosses,
		ColumnGains,
	}
}

// BalanceColumns lists the columns whose presence makes an account record
// worth keeping. Accounts with only debit/credit movement and no resulting
// balance are transient rows.
func BalanceColumns() []Column {
	return []Column{
		ColumnAssets,
		ColumnLiabilities,
		ColumnLosses,
		ColumnGains,
		ColumnDebtorBalance,
		ColumnCreditorBalance,
	}
}

// ColumnSpec maps semantic columns to the x-center of that column on a page.
type ColumnSpec map[Column]float64

// Numeric returns a copy of the spec restricted to the eight numeric columns.
func (s ColumnSpec) Numeric() ColumnSpec {
	out := make(ColumnSpec, len(s))
	for _, col := range NumericColumns() {
		if x, ok := s[col]; ok {
			out[col] = x
		}
	}
	return out
}
