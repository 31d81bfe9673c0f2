package models

import (
	"regexp"
	"sort"
)

// codePattern is the strict account-code shape. Anything else on a row is
// name or value material.
var codePattern = regexp.MustCompile(`^\d{6}$`)

// IsAccountCode reports whether text is a well-formed 6-digit account code.
func IsAccountCode(text string) bool {
	return codePattern.MatchString(text)
}

// AccountRecord is one extracted account: its code, the account name as it
// appeared on the balance, and the accumulated amount per column. A column is
// present in Amounts only if at least one token was assigned to it; absence
// means "no value observed", not zero.
type AccountRecord struct {
	Code    string
	Name    string
	Amounts map[Column]int64
}

// Amount returns the accumulated value for col, or zero when the column was
// never observed for this account.
func (r *AccountRecord) Amount(col Column) int64 {
	return r.Amounts[col]
}

// HasBalance reports whether any balance-relevant column holds a nonzero
// amount.
func (r *AccountRecord) HasBalance() bool {
	for _, col := range BalanceColumns() {
		if r.Amounts[col] != 0 {
			return true
		}
	}
	return false
}

// AccountLedger maps account codes to their records. It is built once per
// extraction run by a single owner; consumers only read it.
type AccountLedger struct {
	accounts map[string]*AccountRecord
}

// NewAccountLedger returns an empty ledger ready for accumulation.
func NewAccountLedger() *AccountLedger {
	return &AccountLedger{accounts: make(map[string]*AccountRecord)}
}

// Accumulate adds amount to the given column of the account identified by
// code, creating the record on first sight. Repeated appearances of a code,
// on the same page or across pages, sum into the same record. The first
// non-empty name observed for a code wins.
func (l *AccountLedger) Accumulate(code, name string, col Column, amount int64) {
	rec, ok := l.accounts[code]
	if !ok {
		rec = &AccountRecord{Code: code, Amounts: make(map[Column]int64)}
		l.accounts[code] = rec
	}
	if rec.Name == "" {
		rec.Name = name
	}
	rec.Amounts[col] += amount
}

// Prune drops every record that has no nonzero balance-relevant column and
// returns the number of records removed.
func (l *AccountLedger) Prune() int {
	removed := 0
	for code, rec := range l.accounts {
		if !rec.HasBalance() {
			delete(l.accounts, code)
			removed++
		}
	}
	return removed
}

// Has reports whether the ledger contains an account with the given code.
func (l *AccountLedger) Has(code string) bool {
	_, ok := l.accounts[code]
	return ok
}

// Len returns the number of accounts in the ledger.
func (l *AccountLedger) Len() int {
	return len(l.accounts)
}

// Name returns the account name for code, or the empty string.
func (l *AccountLedger) Name(code string) string {
	if rec, ok := l.accounts[code]; ok {
		return rec.Name
	}
	return ""
}

// Value returns the accumulated amount of one column for code, or zero.
func (l *AccountLedger) Value(code string, col Column) int64 {
	if rec, ok := l.accounts[code]; ok {
		return rec.Amount(col)
	}
	return 0
}

// AnyBalance returns the first positive balance-relevant value for code,
// probing columns in the order gains, losses, assets, liabilities,
// creditor balance, debtor balance.
func (l *AccountLedger) AnyBalance(code string) int64 {
	rec, ok := l.accounts[code]
	if !ok {
		return 0
	}
	probe := []Column{
		ColumnGains, ColumnLosses,
		ColumnAssets, ColumnLiabilities,
		ColumnCreditorBalance, ColumnDebtorBalance,
	}
	for _, col := range probe {
		if v := rec.Amounts[col]; v > 0 {
			return v
		}
	}
	return 0
}

// Record returns the record for code, or nil.
func (l *AccountLedger) Record(code string) *AccountRecord {
	return l.accounts[code]
}

// Codes returns every account code in the ledger in ascending order.
func (l *AccountLedger) Codes() []string {
	codes := make([]string, 0, len(l.accounts))
	for code := range l.accounts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
