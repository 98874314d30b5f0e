package strategy

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
)

// Snowball pays the smallest remaining balance first.
func Snowball() Strategy {
	return byPriority(func(a, b *domain.DebtAccount) bool {
		return a.Remaining.LessThan(b.Remaining)
	})
}

// ReverseSnowball pays the largest remaining balance first.
func ReverseSnowball() Strategy {
	return byPriority(func(a, b *domain.DebtAccount) bool {
		return a.Remaining.GreaterThan(b.Remaining)
	})
}

// Avalanche pays the highest rate first.
func Avalanche() Strategy {
	return byPriority(func(a, b *domain.DebtAccount) bool {
		return a.Rate.GreaterThan(b.Rate)
	})
}

// ReverseAvalanche pays the lowest rate first.
func ReverseAvalanche() Strategy {
	return byPriority(func(a, b *domain.DebtAccount) bool {
		return a.Rate.LessThan(b.Rate)
	})
}

// SmartSnowball ranks accounts by rate^1.5 / (remaining + 1), highest first.
func SmartSnowball() Strategy {
	return Func(func(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation {
		scores := make(map[string]float64, len(ledger))
		for _, a := range ledger.Open() {
			rate := a.Rate.InexactFloat64()
			balance := a.Remaining.InexactFloat64()
			scores[a.Name] = math.Pow(rate, 1.5) / (balance + 1)
		}

		priority := ordered(ledger, func(a, b *domain.DebtAccount) bool {
			return scores[a.Name] > scores[b.Name]
		})
		return Waterfall(plan, priority, budget)
	})
}

// FastestPayoff pays first the account with the fewest estimated months left at its base
// payment. Accounts with a zero base payment are left out.
func FastestPayoff() Strategy {
	return Func(func(ledger domain.Ledger, plan domain.Plan, budget decimal.Decimal) domain.Allocation {
		type estimate struct {
			name   string
			months decimal.Decimal
		}

		estimates := make([]estimate, 0, len(plan))
		for _, e := range plan {
			if e.Account.PaidOff || !e.Base.IsPositive() {
				continue
			}
			estimates = append(estimates, estimate{
				name:   e.Account.Name,
				months: e.Account.Remaining.Div(e.Base),
			})
		}

		sort.SliceStable(estimates, func(i, j int) bool {
			return estimates[i].months.LessThan(estimates[j].months)
		})

		priority := make([]string, len(estimates))
		for i, est := range estimates {
			priority[i] = est.name
		}
		return Waterfall(plan, priority, budget)
	})
}
