package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/iho/payoffsim/internal/domain"
	"github.com/iho/payoffsim/internal/strategy"
)

// ComparisonUseCase runs several strategies over the same debts and collects their outcomes.
type ComparisonUseCase struct {
	simulator *SimulationUseCase
	registry  *strategy.Registry
	source    DebtSource
	exporter  ScheduleExporter
	idGen     IDGenerator
	metrics   MetricsRecorder
	logger    zerolog.Logger
}

// ComparisonOption configures optional collaborators.
type ComparisonOption func(*ComparisonUseCase)

// WithDebtSource sets where Run loads debts from.
func WithDebtSource(source DebtSource) ComparisonOption {
	return func(uc *ComparisonUseCase) { uc.source = source }
}

// WithExporter sets where Run writes schedules and summaries.
func WithExporter(exporter ScheduleExporter) ComparisonOption {
	return func(uc *ComparisonUseCase) { uc.exporter = exporter }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics MetricsRecorder) ComparisonOption {
	return func(uc *ComparisonUseCase) { uc.metrics = metrics }
}

// NewComparisonUseCase creates a new ComparisonUseCase.
func NewComparisonUseCase(
	registry *strategy.Registry,
	idGen IDGenerator,
	logger zerolog.Logger,
	opts ...ComparisonOption,
) *ComparisonUseCase {
	uc := &ComparisonUseCase{
		simulator: NewSimulationUseCase(logger),
		registry:  registry,
		idGen:     idGen,
		metrics:   nopMetrics{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// CompareInput represents input for comparing strategies.
type CompareInput struct {
	Debts         []domain.Debt
	Strategies    []string // empty selects every registered strategy
	Extra         decimal.Decimal
	MaxMonths     int
	ReinvestFreed bool
	Start         time.Time
	Parallel      bool
}

// StrategyOutcome is one strategy's result within a comparison.
type StrategyOutcome struct {
	Strategy      string
	Status        Status
	Months        int
	PayoffMonth   string
	TotalInterest decimal.Decimal
	Schedule      domain.Schedule
	Summary       []domain.LoanSummary
}

// ComparisonResult holds the outcomes of a comparison in registry order.
type ComparisonResult struct {
	RunID    string
	Start    time.Time
	Outcomes []StrategyOutcome
}

// Best returns the paid-off outcome with the least interest, ties broken by fewer months.
// It returns nil when no strategy paid everything off.
func (r *ComparisonResult) Best() *StrategyOutcome {
	var best *StrategyOutcome
	for i := range r.Outcomes {
		o := &r.Outcomes[i]
		if o.Status != StatusPaidOff {
			continue
		}
		if best == nil ||
			o.TotalInterest.LessThan(best.TotalInterest) ||
			(o.TotalInterest.Equal(best.TotalInterest) && o.Months < best.Months) {
			best = o
		}
	}
	return best
}

// Compare runs every selected strategy on its own copy of the debts.
func (uc *ComparisonUseCase) Compare(ctx context.Context, input CompareInput) (*ComparisonResult, error) {
	if err := domain.ValidateDebts(input.Debts); err != nil {
		return nil, err
	}

	if input.MaxMonths == 0 {
		input.MaxMonths = DefaultMaxMonths
	}
	if err := domain.ValidateRun(input.Extra, input.MaxMonths); err != nil {
		return nil, err
	}

	entries, err := uc.registry.Select(input.Strategies...)
	if err != nil {
		return nil, err
	}

	if input.Start.IsZero() {
		input.Start = time.Now().UTC()
	}

	result := &ComparisonResult{
		RunID:    uc.idGen.Generate(),
		Start:    input.Start,
		Outcomes: make([]StrategyOutcome, len(entries)),
	}

	log := uc.logger.With().Str("run_id", result.RunID).Logger()
	log.Info().
		Int("debts", len(input.Debts)).
		Int("strategies", len(entries)).
		Str("extra", input.Extra.StringFixed(domain.MoneyPlaces)).
		Bool("reinvest_freed", input.ReinvestFreed).
		Msg("comparison started")

	g, gctx := errgroup.WithContext(ctx)
	if !input.Parallel {
		g.SetLimit(1)
	}

	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcome, err := uc.runOne(gctx, entry, input)
			if err != nil {
				return fmt.Errorf("strategy %s: %w", entry.Name, err)
			}
			result.Outcomes[i] = *outcome
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, o := range result.Outcomes {
		log.Info().
			Str("strategy", o.Strategy).
			Str("status", string(o.Status)).
			Int("months", o.Months).
			Str("interest", o.TotalInterest.StringFixed(domain.MoneyPlaces)).
			Msg("strategy finished")
	}

	return result, nil
}

func (uc *ComparisonUseCase) runOne(ctx context.Context, entry strategy.Entry, input CompareInput) (*StrategyOutcome, error) {
	started := time.Now()

	sim, err := uc.simulator.Simulate(ctx, SimulateInput{
		Debts:         input.Debts,
		StrategyName:  entry.Name,
		Strategy:      entry.Strategy,
		Extra:         input.Extra,
		MaxMonths:     input.MaxMonths,
		ReinvestFreed: input.ReinvestFreed,
		Start:         input.Start,
	})
	if err != nil {
		return nil, err
	}

	outcome := &StrategyOutcome{
		Strategy:      entry.Name,
		Status:        sim.Status,
		Months:        sim.Months,
		TotalInterest: sim.Schedule.TotalInterest(),
		Schedule:      sim.Schedule,
		Summary:       Summarize(sim.Ledger, sim.Schedule, input.Start),
	}
	if sim.Months > 0 {
		outcome.PayoffMonth = domain.MonthLabel(input.Start, sim.Months)
	}

	uc.metrics.ObserveSimulation(entry.Name, sim.Status, sim.Months, outcome.TotalInterest.InexactFloat64(), time.Since(started))

	return outcome, nil
}

// RunInput represents input for a full load, compare and export cycle.
type RunInput struct {
	Strategies    []string
	Extra         decimal.Decimal
	MaxMonths     int
	ReinvestFreed bool
	Start         time.Time
	Parallel      bool
}

// Run loads debts from the configured source, compares strategies and exports every outcome.
func (uc *ComparisonUseCase) Run(ctx context.Context, input RunInput) (*ComparisonResult, error) {
	if uc.source == nil {
		return nil, fmt.Errorf("no debt source configured")
	}

	debts, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}

	result, err := uc.Compare(ctx, CompareInput{
		Debts:         debts,
		Strategies:    input.Strategies,
		Extra:         input.Extra,
		MaxMonths:     input.MaxMonths,
		ReinvestFreed: input.ReinvestFreed,
		Start:         input.Start,
		Parallel:      input.Parallel,
	})
	if err != nil {
		return nil, err
	}

	if uc.exporter == nil {
		return result, nil
	}

	for _, o := range result.Outcomes {
		if err := uc.exporter.Export(ctx, o.Strategy, o.Schedule, o.Summary); err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", o.Strategy, err)
		}
	}

	return result, nil
}

// Strategies returns the registered strategy names in report order.
func (uc *ComparisonUseCase) Strategies() []string {
	return uc.registry.Names()
}
