package strategy

import (
	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
)

// Proportional splits the budget across open accounts in proportion to their rates,
// each share capped at the account's headroom and at what is left of the budget.
// Returns an empty allocation when every open rate is zero.
func Proportional() Strategy {
	return Func(func(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation {
		open := ledger.Open()

		totalRate := decimal.Zero
		for _, a := range open {
			totalRate = totalRate.Add(a.Rate)
		}

		allocation := domain.Allocation{}
		if !totalRate.IsPositive() {
			return allocation
		}

		remaining := budget
		for _, a := range open {
			share := budget.Mul(a.Rate).Div(totalRate)
			amount := decimal.Min(remaining, share, plan.MaxExtra(a.Name))
			if amount.IsPositive() {
				allocation[a.Name] = amount
				remaining = remaining.Sub(amount)
			}
			if !remaining.IsPositive() {
				break
			}
		}

		return allocation
	})
}

// SplitFiftyFifty sends half the budget to the highest-rate account and the rest of it to the
// lowest-balance account. When both are the same account the two parts are added together,
// capped at its headroom, rather than the second part replacing the first. That can spend up
// to the whole budget on one account where a replacing merge would leave part of it unused.
func SplitFiftyFifty() Strategy {
	return Func(func(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation {
		byRate := ordered(ledger, func(a, b *domain.DebtAccount) bool {
			return a.Rate.GreaterThan(b.Rate)
		})
		if len(byRate) == 0 {
			return domain.Allocation{}
		}
		byBalance := ordered(ledger, func(a, b *domain.DebtAccount) bool {
			return a.Remaining.LessThan(b.Remaining)
		})

		half := budget.Div(decimal.NewFromInt(2))
		first := Waterfall(plan, byRate[:1], half)

		allocation := domain.Allocation{}
		for name, amount := range first {
			allocation[name] = amount
		}

		target := byBalance[0]
		headroom := plan.MaxExtra(target).Sub(allocation[target])
		second := decimal.Min(budget.Sub(first.Total()), headroom)
		if second.IsPositive() {
			allocation[target] = allocation[target].Add(second)
		}

		return allocation
	})
}

// PhaseSwitch uses before until at least threshold accounts are paid off, then after.
func PhaseSwitch(before, after Strategy, threshold int) Strategy {
	return Func(func(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation {
		if ledger.PaidOffCount() >= threshold {
			return after.Allocate(ledger, plan, budget)
		}
		return before.Allocate(ledger, plan, budget)
	})
}

// SnowballThenAvalanche switches from snowball to avalanche once three loans are paid off.
func SnowballThenAvalanche() Strategy {
	return PhaseSwitch(Snowball(), Avalanche(), 3)
}

// AvalancheThenSnowball switches from avalanche to snowball once two loans are paid off.
func AvalancheThenSnowball() Strategy {
	return PhaseSwitch(Avalanche(), Snowball(), 2)
}
