// Package strategy holds the extra-payment allocation policies compared by the simulator.
package strategy

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
)

// Strategy proposes how the month's extra budget is spread across open accounts.
// Implementations must not modify the ledger or the plan.
type Strategy interface {
	Allocate(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation
}

// Func adapts an ordinary function to the Strategy interface.
type Func func(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation

// Allocate calls f.
func (f Func) Allocate(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation {
	return f(ledger, plan, budget)
}

// Waterfall walks priority in order, giving each account as much of the remaining budget as
// its headroom allows, and stops once the budget is spent. Only positive amounts are returned.
func Waterfall(plan domain.Plan, priority []string, budget decimal.Decimal) domain.Allocation {
	allocation := domain.Allocation{}
	remaining := budget

	for _, name := range priority {
		if !remaining.IsPositive() {
			break
		}

		amount := decimal.Min(remaining, plan.MaxExtra(name).Sub(allocation[name]))
		if amount.IsPositive() {
			allocation[name] = allocation[name].Add(amount)
			remaining = remaining.Sub(amount)
		}
	}

	return allocation
}

// ordered returns the names of open accounts sorted by less. Ties keep input order.
func ordered(ledger domain.Ledger, less func(a, b *domain.DebtAccount) bool) []string {
	open := ledger.Open()
	sort.SliceStable(open, func(i, j int) bool {
		return less(open[i], open[j])
	})

	names := make([]string, len(open))
	for i, a := range open {
		names[i] = a.Name
	}
	return names
}

// byPriority builds a strategy that waterfalls the budget over open accounts sorted by less.
func byPriority(less func(a, b *domain.DebtAccount) bool) Func {
	return func(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation {
		return Waterfall(plan, ordered(ledger, less), budget)
	}
}
