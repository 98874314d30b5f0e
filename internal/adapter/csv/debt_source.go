// Package csv reads debt lists from and writes simulation results to CSV files.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
)

// Input column names.
const (
	ColumnLoan       = "Loan"
	ColumnBalance    = "Balance"
	ColumnRate       = "Rate"
	ColumnMinPayment = "MinPayment"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// FallbackDebts is used when no input file is available.
func FallbackDebts() []domain.Debt {
	return []domain.Debt{
		{Name: "HomeLoan", Rate: decimal.NewFromInt(3), Balance: decimal.NewFromInt(200000), MinPayment: decimal.NewFromInt(800)},
		{Name: "CreditCard1", Rate: decimal.NewFromInt(24), Balance: decimal.NewFromInt(10000), MinPayment: decimal.NewFromInt(50)},
		{Name: "CreditCard2", Rate: decimal.NewFromInt(22), Balance: decimal.NewFromInt(12000), MinPayment: decimal.NewFromInt(60)},
		{Name: "CarLoan", Rate: decimal.NewFromInt(18), Balance: decimal.NewFromInt(25000), MinPayment: decimal.NewFromInt(100)},
	}
}

// DebtSource implements usecase.DebtSource for a CSV file.
type DebtSource struct {
	path   string
	logger zerolog.Logger
}

// NewDebtSource creates a new DebtSource. An empty path selects the fallback dataset.
func NewDebtSource(path string, logger zerolog.Logger) *DebtSource {
	return &DebtSource{path: path, logger: logger}
}

// Load reads and validates the debts.
func (s *DebtSource) Load(ctx context.Context) ([]domain.Debt, error) {
	if s.path == "" {
		s.logger.Warn().Msg("no input CSV given, using fallback data")
		return FallbackDebts(), nil
	}

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Warn().Str("path", s.path).Msg("input CSV not found, using fallback data")
		return FallbackDebts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	debts, err := ReadDebts(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	s.logger.Info().Str("path", s.path).Int("debts", len(debts)).Msg("loaded debts")
	return debts, nil
}

// ReadDebts parses a header row followed by one debt per line. Columns may appear in any
// order and unknown columns are ignored.
func ReadDebts(r io.Reader) ([]domain.Debt, error) {
	reader := stdcsv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrNoDebts
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, required := range []string{ColumnLoan, ColumnBalance, ColumnRate, ColumnMinPayment} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var debts []domain.Debt
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		debt, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		debts = append(debts, debt)
	}

	if err := domain.ValidateDebts(debts); err != nil {
		return nil, err
	}

	return debts, nil
}

func parseRecord(record []string, columns map[string]int) (domain.Debt, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[columns[name]])
	}

	number := func(name string) (decimal.Decimal, error) {
		raw := field(name)
		if raw == "" {
			return decimal.Zero, fmt.Errorf("%w: %s is empty", ErrMissingColumn, name)
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, raw, err)
		}
		return v, nil
	}

	balance, err := number(ColumnBalance)
	if err != nil {
		return domain.Debt{}, err
	}
	rate, err := number(ColumnRate)
	if err != nil {
		return domain.Debt{}, err
	}
	minPayment, err := number(ColumnMinPayment)
	if err != nil {
		return domain.Debt{}, err
	}

	return domain.Debt{
		Name:       field(ColumnLoan),
		Balance:    balance,
		Rate:       rate,
		MinPayment: minPayment,
	}, nil
}
