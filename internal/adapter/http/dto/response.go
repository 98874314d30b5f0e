package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
	"github.com/iho/payoffsim/internal/usecase"
)

// ScheduleRowResponse represents one amortization row in API responses.
type ScheduleRowResponse struct {
	Month           int             `json:"month"`
	Date            string          `json:"date"`
	Loan            string          `json:"loan"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	InterestPaid    decimal.Decimal `json:"interest_paid"`
	PrincipalPaid   decimal.Decimal `json:"principal_paid"`
	EndingBalance   decimal.Decimal `json:"ending_balance"`
}

// LoanSummaryResponse represents one loan's totals in API responses.
type LoanSummaryResponse struct {
	Loan            string          `json:"loan"`
	OriginalBalance decimal.Decimal `json:"original_balance"`
	Rate            decimal.Decimal `json:"rate"`
	MinPayment      decimal.Decimal `json:"min_payment"`
	PayoffMonth     string          `json:"payoff_month,omitempty"`
	MonthsToPayoff  int             `json:"months_to_payoff"`
	PrincipalPaid   decimal.Decimal `json:"principal_paid"`
	InterestPaid    decimal.Decimal `json:"interest_paid"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	PaidOff         bool            `json:"paid_off"`
}

// StrategyOutcomeResponse represents one strategy's result in API responses.
type StrategyOutcomeResponse struct {
	Strategy      string                `json:"strategy"`
	Status        string                `json:"status"`
	Months        int                   `json:"months"`
	PayoffMonth   string                `json:"payoff_month,omitempty"`
	TotalInterest decimal.Decimal       `json:"total_interest"`
	Loans         []LoanSummaryResponse `json:"loans"`
	Schedule      []ScheduleRowResponse `json:"schedule,omitempty"`
}

// SimulationResponse represents a strategy comparison in API responses.
type SimulationResponse struct {
	RunID        string                    `json:"run_id"`
	StartMonth   string                    `json:"start_month"`
	BestStrategy string                    `json:"best_strategy,omitempty"`
	Outcomes     []StrategyOutcomeResponse `json:"outcomes"`
}

// StrategiesResponse lists the available strategies in report order.
type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SimulationFromUseCase converts a comparison result to a response.
func SimulationFromUseCase(r *usecase.ComparisonResult, includeSchedule bool) *SimulationResponse {
	resp := &SimulationResponse{
		RunID:      r.RunID,
		StartMonth: r.Start.Format(domain.StartMonthLayout),
		Outcomes:   make([]StrategyOutcomeResponse, len(r.Outcomes)),
	}
	if best := r.Best(); best != nil {
		resp.BestStrategy = best.Strategy
	}

	for i, o := range r.Outcomes {
		out := StrategyOutcomeResponse{
			Strategy:      o.Strategy,
			Status:        string(o.Status),
			Months:        o.Months,
			PayoffMonth:   o.PayoffMonth,
			TotalInterest: o.TotalInterest.Round(domain.MoneyPlaces),
			Loans:         make([]LoanSummaryResponse, len(o.Summary)),
		}
		for j, s := range o.Summary {
			out.Loans[j] = LoanSummaryResponse{
				Loan:            s.Loan,
				OriginalBalance: s.OriginalBalance,
				Rate:            s.Rate,
				MinPayment:      s.MinPayment,
				PayoffMonth:     s.PayoffMonth,
				MonthsToPayoff:  s.MonthsToPayoff,
				PrincipalPaid:   s.PrincipalPaid,
				InterestPaid:    s.InterestPaid,
				TotalPaid:       s.TotalPaid,
				PaidOff:         s.PaidOff,
			}
		}
		if includeSchedule {
			out.Schedule = ScheduleFromDomain(o.Schedule)
		}
		resp.Outcomes[i] = out
	}

	return resp
}

// ScheduleFromDomain converts schedule rows to responses.
func ScheduleFromDomain(schedule domain.Schedule) []ScheduleRowResponse {
	result := make([]ScheduleRowResponse, len(schedule))
	for i, r := range schedule {
		result[i] = ScheduleRowResponse{
			Month:           r.Month,
			Date:            r.Date,
			Loan:            r.Loan,
			StartingBalance: r.StartingBalance,
			MonthlyPayment:  r.MonthlyPayment,
			InterestPaid:    r.InterestPaid,
			PrincipalPaid:   r.PrincipalPaid,
			EndingBalance:   r.EndingBalance,
		}
	}
	return result
}
