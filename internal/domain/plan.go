package domain

import (
	"github.com/shopspring/decimal"
)

// PlanEntry is one open account's payment plan for the current month.
type PlanEntry struct {
	Account         *DebtAccount
	StartingBalance decimal.Decimal
	Interest        decimal.Decimal
	Base            decimal.Decimal
	MaxExtra        decimal.Decimal

	// Filled in by ApplyPayments.
	Extra         decimal.Decimal
	TotalPayment  decimal.Decimal
	PrincipalPaid decimal.Decimal
}

// Plan holds the month's entries in input order.
type Plan []*PlanEntry

// Entry returns the plan entry for the named account, or nil.
func (p Plan) Entry(name string) *PlanEntry {
	for _, e := range p {
		if e.Account.Name == name {
			return e
		}
	}
	return nil
}

// MaxExtra returns the named account's headroom, zero when the account has no entry.
func (p Plan) MaxExtra(name string) decimal.Decimal {
	if e := p.Entry(name); e != nil {
		return e.MaxExtra
	}
	return decimal.Zero
}

// TotalExtra sums the extra payments applied this month.
func (p Plan) TotalExtra() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p {
		total = total.Add(e.Extra)
	}
	return total
}

// Allocation maps account names to proposed extra payments. Missing names mean zero.
type Allocation map[string]decimal.Decimal

// Total sums all proposed amounts.
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range a {
		total = total.Add(v)
	}
	return total
}

// BuildPlan computes interest, base payment and extra headroom for every open account.
// It does not modify the ledger.
func (l Ledger) BuildPlan() Plan {
	plan := make(Plan, 0, len(l))
	for _, a := range l {
		if a.PaidOff {
			continue
		}

		interest := a.MonthlyInterest()
		payoff := a.Remaining.Add(interest)
		base := decimal.Min(a.MinPayment, payoff)

		plan = append(plan, &PlanEntry{
			Account:         a,
			StartingBalance: a.Remaining,
			Interest:        interest,
			Base:            base,
			MaxExtra:        decimal.Max(decimal.Zero, payoff.Sub(base)),
		})
	}
	return plan
}

// ApplyPayments applies base payments plus the proposed extra amounts to the ledger.
// Every extra amount is clamped to the account's headroom and to what is left of budget,
// so a misbehaving allocation cannot overpay a loan or overspend the month.
// It returns the minimum payments freed by accounts closed this month.
func (l Ledger) ApplyPayments(plan Plan, allocation Allocation, budget decimal.Decimal) decimal.Decimal {
	remainingBudget := decimal.Max(decimal.Zero, budget)
	freed := decimal.Zero

	for _, e := range plan {
		a := e.Account
		if a.PaidOff {
			continue
		}

		extra := decimal.Min(allocation[a.Name], e.MaxExtra, remainingBudget)
		extra = decimal.Max(decimal.Zero, extra)

		total := decimal.Min(e.Base.Add(extra), a.Remaining.Add(e.Interest))
		principal := total.Sub(e.Interest)

		if a.ApplyPrincipal(principal) {
			freed = freed.Add(a.MinPayment)
		}

		e.Extra = extra
		e.TotalPayment = total
		e.PrincipalPaid = principal

		remainingBudget = remainingBudget.Sub(extra)
	}

	return freed
}
