// Package regime implements the deterministic tax calculation: the two
// 14 D N°3 modes over ledger-derived totals, plus the worksheet line-item
// layer that produces those totals from an account ledger.
package regime

import (
	"errors"
	"fmt"

	"fjacquet/balance-rli/internal/models"

	"github.com/shopspring/decimal"
)

// Regime selects the tax regime the calculation runs under.
type Regime string

const (
	// ProPymeTransparente is régimen 14 D N°3, taxed at 12.5%.
	ProPymeTransparente Regime = "14d3"
	// SemiIntegrado is régimen 14 A (27%). Its calculation rules are not
	// implemented; selecting it yields ErrRegimeNotSupported.
	SemiIntegrado Regime = "14a"
)

// Mode selects which of the two calculation formulas applies.
type Mode string

const (
	// NoIncentive taxes the full taxable base.
	NoIncentive Mode = "no-incentive"
	// WithIncentive applies the savings-incentive deduction: half the
	// reinvested base, capped at the UF-denominated limit.
	WithIncentive Mode = "with-incentive"
)

// ErrRegimeNotSupported is returned when the selected regime has no
// calculation rules yet.
var ErrRegimeNotSupported = errors.New("regime 14 A is not implemented; use regime 14 D N°3")

var (
	rateProPyme = decimal.RequireFromString("0.125")
	half        = decimal.RequireFromString("0.5")
)

// Inputs are the scalar figures a calculation consumes. Income, Expenses,
// Disallowed and ProvisionalPayments come from the worksheet totals; the
// remaining fields only matter in WithIncentive mode.
type Inputs struct {
	Income              int64
	Expenses            int64
	Disallowed          int64
	ProvisionalPayments int64

	Withdrawals     int64
	HistoricalFines int64
	HistoricalTax   int64
	SavingsLimit    int64
}

// Validate rejects inputs the formulas assume to be non-negative. Derived
// intermediates may go negative (loss-making periods); raw inputs may not.
func (in Inputs) Validate() error {
	checks := []struct {
		name  string
		value int64
	}{
		{"income", in.Income},
		{"expenses", in.Expenses},
		{"disallowed expenses", in.Disallowed},
		{"provisional payments", in.ProvisionalPayments},
		{"savings limit", in.SavingsLimit},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", c.name, c.value)
		}
	}
	return nil
}

// SavingsLimitAmount computes the peso value of the savings-incentive cap:
// quantity units at unitValue pesos each.
func SavingsLimitAmount(quantity, unitValue int64) int64 {
	return quantity * unitValue
}

// Calculate evaluates one mode of one regime from scratch and returns a
// fresh result. It never fails for well-formed inputs; negative intermediate
// values are legitimate (refunds, loss periods), and the only clamp is the
// documented one on the deduction.
func Calculate(regime Regime, mode Mode, in Inputs) (models.CalculationResult, error) {
	if regime != ProPymeTransparente {
		if regime == SemiIntegrado {
			return models.CalculationResult{}, ErrRegimeNotSupported
		}
		return models.CalculationResult{}, fmt.Errorf("unknown regime: %s", regime)
	}
	if err := in.Validate(); err != nil {
		return models.CalculationResult{}, err
	}

	res := models.CalculationResult{
		TotalIncome:         in.Income,
		TotalExpenses:       in.Expenses,
		TotalDisallowed:     in.Disallowed,
		ProvisionalPayments: in.ProvisionalPayments,
	}

	switch mode {
	case NoIncentive:
		res.TaxableBase = in.Income - in.Expenses + in.Disallowed
		res.TaxNoIncentive = applyRate(res.TaxableBase, rateProPyme)
		res.BalanceNoIncentive = res.TaxNoIncentive - in.ProvisionalPayments

	case WithIncentive:
		res.Withdrawals = in.Withdrawals
		res.HistoricalFines = in.HistoricalFines
		res.HistoricalTax = in.HistoricalTax
		res.SavingsLimit = in.SavingsLimit

		res.SubBase = in.Income - in.Expenses + in.Disallowed
		res.InvestedBase = res.SubBase - in.Withdrawals - in.HistoricalFines - in.HistoricalTax
		res.HalfInvested = applyRate(res.InvestedBase, half)

		res.Deduction = res.HalfInvested
		if in.SavingsLimit < res.Deduction {
			res.Deduction = in.SavingsLimit
		}
		if res.Deduction < 0 {
			res.Deduction = 0
		}

		res.TaxWithIncentive = applyRate(res.Deduction, rateProPyme)
		res.BalanceWithIncentive = res.TaxWithIncentive - in.ProvisionalPayments

	default:
		return models.CalculationResult{}, fmt.Errorf("unknown calculation mode: %s", mode)
	}

	return res, nil
}

// applyRate multiplies an integer amount by a rate and truncates toward
// zero, matching the source system's integer arithmetic.
func applyRate(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Truncate(0).IntPart()
}
