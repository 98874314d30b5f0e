package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/payoffsim/internal/adapter/console"
	csvAdapter "github.com/iho/payoffsim/internal/adapter/csv"
	"github.com/iho/payoffsim/internal/adapter/idgen"
	"github.com/iho/payoffsim/internal/domain"
	"github.com/iho/payoffsim/internal/infrastructure/config"
	"github.com/iho/payoffsim/internal/infrastructure/logger"
	"github.com/iho/payoffsim/internal/strategy"
	"github.com/iho/payoffsim/internal/usecase"
)

type simulateOptions struct {
	months     int
	outputDir  string
	strategies []string
	start      string
	reinvest   bool
	parallel   bool
	noExport   bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "payoffsim",
		Short: "Debt repayment simulator",
		Long:  `Simulates paying down a set of loans month by month under every repayment strategy and compares total interest and time to payoff.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, console)")

	rootCmd.AddCommand(newSimulateCmd(cfg), newStrategiesCmd())

	return rootCmd
}

func newSimulateCmd(cfg *config.Config) *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate [input_csv] [extra]",
		Short: "Run and compare repayment strategies",
		Long: `Loads debts from a CSV file with the columns Loan, Balance, Rate and MinPayment
(falling back to a sample dataset when no file is given), simulates every selected strategy,
writes amortization and summary CSVs and prints a comparison.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, cfg, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.months, "months", cfg.MaxMonths, "Maximum number of months to simulate")
	cmd.Flags().StringVar(&opts.outputDir, "output_dir", cfg.OutputDir, "Directory for the dated CSV output")
	cmd.Flags().StringSliceVar(&opts.strategies, "strategy", nil, "Strategy to run (repeatable, default all)")
	cmd.Flags().StringVar(&opts.start, "start", cfg.StartMonth, "First simulated month as YYYY-MM (default current month)")
	cmd.Flags().BoolVar(&opts.reinvest, "reinvest", cfg.ReinvestFreed, "Add paid-off loans' minimum payments to the extra budget")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", cfg.Parallel, "Simulate strategies concurrently")
	cmd.Flags().BoolVar(&opts.noExport, "no-export", false, "Skip writing CSV files")

	return cmd
}

func runSimulate(cmd *cobra.Command, cfg *config.Config, opts simulateOptions, args []string) error {
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	var inputPath string
	if len(args) > 0 {
		inputPath = args[0]
	}

	extra, err := cfg.ExtraAmount()
	if err != nil {
		return err
	}
	if len(args) > 1 {
		extra, err = decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid extra amount %q: %w", args[1], err)
		}
	}

	start, err := domain.ParseStartMonth(opts.start, time.Now())
	if err != nil {
		return err
	}

	exporter := csvAdapter.NewExporter(opts.outputDir, log)
	ucOpts := []usecase.ComparisonOption{
		usecase.WithDebtSource(csvAdapter.NewDebtSource(inputPath, log)),
	}
	if !opts.noExport {
		ucOpts = append(ucOpts, usecase.WithExporter(exporter))
	}

	comparisonUC := usecase.NewComparisonUseCase(strategy.Default(), idgen.NewULIDGenerator(), log, ucOpts...)

	result, err := comparisonUC.Run(cmd.Context(), usecase.RunInput{
		Strategies:    opts.strategies,
		Extra:         extra,
		MaxMonths:     opts.months,
		ReinvestFreed: opts.reinvest,
		Start:         start,
		Parallel:      opts.parallel,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := console.NewPrinter(out).PrintComparison(result); err != nil {
		return err
	}

	if !opts.noExport {
		fmt.Fprintf(out, "Results written to %s\n", exporter.Dir())
	}

	return nil
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available strategies in report order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printLines(cmd.OutOrStdout(), strategy.Default().Names())
		},
	}
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
