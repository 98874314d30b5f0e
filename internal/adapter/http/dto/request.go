package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
	"github.com/iho/payoffsim/internal/usecase"
)

// DebtRequest represents one loan in a simulation request.
type DebtRequest struct {
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	Rate       decimal.Decimal `json:"rate"`
	MinPayment decimal.Decimal `json:"min_payment"`
}

// SimulationRequest represents a request to compare strategies over a set of debts.
type SimulationRequest struct {
	Debts           []DebtRequest   `json:"debts"`
	Extra           decimal.Decimal `json:"extra"`
	MaxMonths       int             `json:"max_months,omitempty"`
	Strategies      []string        `json:"strategies,omitempty"`
	ReinvestFreed   *bool           `json:"reinvest_freed,omitempty"`
	StartMonth      string          `json:"start_month,omitempty"`
	IncludeSchedule bool            `json:"include_schedule,omitempty"`
}

// SimulationDefaults fills fields a request leaves out.
type SimulationDefaults struct {
	MaxMonths     int
	ReinvestFreed bool
	Parallel      bool
}

// ToUseCaseInput converts to use case input.
func (r *SimulationRequest) ToUseCaseInput(defaults SimulationDefaults, now time.Time) (usecase.CompareInput, error) {
	start, err := domain.ParseStartMonth(r.StartMonth, now)
	if err != nil {
		return usecase.CompareInput{}, err
	}

	debts := make([]domain.Debt, len(r.Debts))
	for i, d := range r.Debts {
		debts[i] = domain.Debt{
			Name:       d.Name,
			Balance:    d.Balance,
			Rate:       d.Rate,
			MinPayment: d.MinPayment,
		}
	}

	input := usecase.CompareInput{
		Debts:         debts,
		Strategies:    r.Strategies,
		Extra:         r.Extra,
		MaxMonths:     r.MaxMonths,
		ReinvestFreed: defaults.ReinvestFreed,
		Start:         start,
		Parallel:      defaults.Parallel,
	}
	if input.MaxMonths == 0 {
		input.MaxMonths = defaults.MaxMonths
	}
	if r.ReinvestFreed != nil {
		input.ReinvestFreed = *r.ReinvestFreed
	}

	if err := domain.ValidateRun(input.Extra, input.MaxMonths); err != nil {
		return usecase.CompareInput{}, err
	}

	return input, nil
}
