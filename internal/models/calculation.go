package models

// LineItem is one row of the tax calculation worksheet: an account line with
// its resolved amount and the F22 form code it reports under. Manual lines
// carry an amount typed in by the caller instead of one read from the ledger.
type LineItem struct {
	Code     string
	Name     string
	Amount   int64
	Sign     string
	FormCode string
	Manual   bool
	InLedger bool
}

// CalculationResult carries every figure of a tax calculation. Only the
// fields of the selected mode are populated; the other mode's fields stay at
// zero. A result is built fresh per calculation and carries no state across
// calls.
type CalculationResult struct {
	// Ledger-derived totals.
	TotalIncome     int64
	TotalExpenses   int64
	TotalDisallowed int64

	ProvisionalPayments int64

	// Mode without the savings incentive.
	TaxableBase        int64
	TaxNoIncentive     int64
	BalanceNoIncentive int64

	// Mode with the savings incentive.
	SubBase              int64
	Withdrawals          int64
	HistoricalFines      int64
	HistoricalTax        int64
	InvestedBase         int64
	HalfInvested         int64
	SavingsLimit         int64
	Deduction            int64
	TaxWithIncentive     int64
	BalanceWithIncentive int64
}
