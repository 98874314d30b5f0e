package domain

import (
	"github.com/shopspring/decimal"
)

// PayoffThreshold is the balance at or below which a loan is treated as paid off.
var PayoffThreshold = decimal.RequireFromString("0.01")

// Debt is a validated loan record supplied by a DebtSource.
type Debt struct {
	Name       string
	Balance    decimal.Decimal
	Rate       decimal.Decimal // nominal annual rate, percent
	MinPayment decimal.Decimal
}

// DebtAccount is the mutable per-loan state carried across simulated months.
type DebtAccount struct {
	Name            string
	OriginalBalance decimal.Decimal
	Rate            decimal.Decimal
	MinPayment      decimal.Decimal
	Remaining       decimal.Decimal
	PaidOff         bool

	// Order is the position of the loan in the input list and the secondary sort key
	// for every strategy ordering.
	Order int
}

// NewDebtAccount opens an account for debt at the given input position.
func NewDebtAccount(debt Debt, order int) *DebtAccount {
	return &DebtAccount{
		Name:            debt.Name,
		OriginalBalance: debt.Balance,
		Rate:            debt.Rate,
		MinPayment:      debt.MinPayment,
		Remaining:       debt.Balance,
		Order:           order,
	}
}

// MonthlyInterest returns this month's accrual on the remaining balance.
func (a *DebtAccount) MonthlyInterest() decimal.Decimal {
	return a.Remaining.Mul(a.Rate).Div(decimal.NewFromInt(1200))
}

// ApplyPrincipal reduces the remaining balance and closes the account once it falls to the
// payoff threshold. It reports whether the account was closed by this call.
func (a *DebtAccount) ApplyPrincipal(principal decimal.Decimal) bool {
	if a.PaidOff {
		return false
	}

	a.Remaining = a.Remaining.Sub(principal)
	if a.Remaining.LessThanOrEqual(PayoffThreshold) {
		a.Remaining = decimal.Zero
		a.PaidOff = true
		return true
	}

	return false
}

// Ledger is the set of accounts for one simulation run, in input order.
type Ledger []*DebtAccount

// NewLedger opens a fresh account for every debt. Each call returns independent state.
func NewLedger(debts []Debt) Ledger {
	ledger := make(Ledger, len(debts))
	for i, d := range debts {
		ledger[i] = NewDebtAccount(d, i)
	}
	return ledger
}

// Open returns the accounts that are not yet paid off, in input order.
func (l Ledger) Open() []*DebtAccount {
	open := make([]*DebtAccount, 0, len(l))
	for _, a := range l {
		if !a.PaidOff {
			open = append(open, a)
		}
	}
	return open
}

// PaidOffCount returns how many accounts are closed.
func (l Ledger) PaidOffCount() int {
	n := 0
	for _, a := range l {
		if a.PaidOff {
			n++
		}
	}
	return n
}

// AllPaidOff reports whether every account is closed.
func (l Ledger) AllPaidOff() bool {
	return l.PaidOffCount() == len(l)
}

// TotalRemaining sums the outstanding principal across all accounts.
func (l Ledger) TotalRemaining() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l {
		total = total.Add(a.Remaining)
	}
	return total
}

// Find returns the account with the given name, or nil.
func (l Ledger) Find(name string) *DebtAccount {
	for _, a := range l {
		if a.Name == name {
			return a
		}
	}
	return nil
}
