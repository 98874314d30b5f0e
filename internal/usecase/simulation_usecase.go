package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
	"github.com/iho/payoffsim/internal/strategy"
)

// SimulationUseCase drives the month-by-month repayment loop.
type SimulationUseCase struct {
	logger zerolog.Logger
}

// NewSimulationUseCase creates a new SimulationUseCase.
func NewSimulationUseCase(logger zerolog.Logger) *SimulationUseCase {
	return &SimulationUseCase{logger: logger}
}

// SimulateInput represents input for a single strategy run.
type SimulateInput struct {
	Debts        []domain.Debt
	StrategyName string
	Strategy     strategy.Strategy
	Extra        decimal.Decimal
	MaxMonths    int
	// ReinvestFreed adds the minimum payment of every paid-off loan to the extra budget
	// from the following month on.
	ReinvestFreed bool
	Start         time.Time
}

// SimulationResult is the outcome of a single strategy run.
type SimulationResult struct {
	Strategy    string
	Status      Status
	Months      int
	Schedule    domain.Schedule
	Ledger      domain.Ledger
	FinalBudget decimal.Decimal
}

// ctxCheckMonths is how often the loop looks for cancellation.
const ctxCheckMonths = 12

// Simulate runs one strategy against a fresh ledger built from the input debts.
// Inputs are validated first; after that the loop only stops early when ctx is done.
func (uc *SimulationUseCase) Simulate(ctx context.Context, input SimulateInput) (*SimulationResult, error) {
	if input.Strategy == nil {
		return nil, fmt.Errorf("%w: %q has no implementation", domain.ErrUnknownStrategy, input.StrategyName)
	}

	if err := domain.ValidateDebts(input.Debts); err != nil {
		return nil, err
	}

	maxMonths := input.MaxMonths
	if maxMonths == 0 {
		maxMonths = DefaultMaxMonths
	}
	if err := domain.ValidateRun(input.Extra, maxMonths); err != nil {
		return nil, err
	}

	log := uc.logger.With().Str("strategy", input.StrategyName).Logger()

	ledger := domain.NewLedger(input.Debts)
	budget := input.Extra
	schedule := make(domain.Schedule, 0, len(ledger)*12)

	month := 1
	for !ledger.AllPaidOff() && month <= maxMonths {
		if (month-1)%ctxCheckMonths == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		plan := ledger.BuildPlan()
		allocation := input.Strategy.Allocate(ledger, plan, budget)
		freed := ledger.ApplyPayments(plan, allocation, budget)
		schedule = append(schedule, domain.RowsForMonth(plan, month, input.Start)...)

		if freed.IsPositive() {
			log.Debug().
				Int("month", month).
				Str("freed", freed.StringFixed(domain.MoneyPlaces)).
				Int("paid_off", ledger.PaidOffCount()).
				Msg("loan paid off")

			if input.ReinvestFreed {
				budget = budget.Add(freed)
			}
		}

		month++
	}

	result := &SimulationResult{
		Strategy:    input.StrategyName,
		Status:      StatusPaidOff,
		Months:      schedule.LastMonth(),
		Schedule:    schedule,
		Ledger:      ledger,
		FinalBudget: budget,
	}

	if !ledger.AllPaidOff() {
		result.Status = StatusTimeout
		log.Warn().
			Int("max_months", maxMonths).
			Int("open", len(ledger.Open())).
			Str("remaining", ledger.TotalRemaining().StringFixed(domain.MoneyPlaces)).
			Msg("month ceiling reached with open loans")
	}

	return result, nil
}
