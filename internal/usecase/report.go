package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
)

// Summarize builds the per-loan summary of a schedule, sorted by months to payoff.
// Loans that never appear in the schedule report zero months. Only paid-off loans get a
// payoff label; a loan still open at the ceiling reports the months it was simulated.
func Summarize(ledger domain.Ledger, schedule domain.Schedule, start time.Time) []domain.LoanSummary {
	summaries := make([]domain.LoanSummary, 0, len(ledger))

	for _, a := range ledger {
		summary := domain.LoanSummary{
			Loan:            a.Name,
			OriginalBalance: a.OriginalBalance,
			Rate:            a.Rate,
			MinPayment:      a.MinPayment,
			PrincipalPaid:   decimal.Zero,
			InterestPaid:    decimal.Zero,
			PaidOff:         a.PaidOff,
		}

		rows := schedule.ForLoan(a.Name)
		if len(rows) > 0 {
			if a.PaidOff {
				summary.PayoffMonth = domain.MonthLabel(start, rows.LastMonth())
			}
			summary.MonthsToPayoff = len(rows)
			for _, r := range rows {
				summary.PrincipalPaid = summary.PrincipalPaid.Add(r.PrincipalPaid)
				summary.InterestPaid = summary.InterestPaid.Add(r.InterestPaid)
			}
		}

		summary.PrincipalPaid = summary.PrincipalPaid.Round(domain.MoneyPlaces)
		summary.InterestPaid = summary.InterestPaid.Round(domain.MoneyPlaces)
		summary.TotalPaid = summary.PrincipalPaid.Add(summary.InterestPaid)

		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].MonthsToPayoff < summaries[j].MonthsToPayoff
	})

	return summaries
}
