package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxDebtNameLength = 255
	MaxDebts          = 1000
	MaxMonthsLimit    = 1200
)

// ValidateDebt checks a single debt record.
func ValidateDebt(d Debt) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidDebtName)
	}

	if len(name) > MaxDebtNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidDebtName, MaxDebtNameLength)
	}

	if d.Balance.IsNegative() {
		return fmt.Errorf("%w: %s has balance %s", ErrNegativeBalance, d.Name, d.Balance)
	}

	if d.Rate.IsNegative() {
		return fmt.Errorf("%w: %s has rate %s", ErrNegativeRate, d.Name, d.Rate)
	}

	if d.MinPayment.IsNegative() {
		return fmt.Errorf("%w: %s has minimum payment %s", ErrNegativeMinPayment, d.Name, d.MinPayment)
	}

	return nil
}

// ValidateDebts checks every record and that names are unique.
func ValidateDebts(debts []Debt) error {
	if len(debts) == 0 {
		return ErrNoDebts
	}

	if len(debts) > MaxDebts {
		return fmt.Errorf("%w: at most %d are supported", ErrTooManyDebts, MaxDebts)
	}

	seen := make(map[string]bool, len(debts))
	for _, d := range debts {
		if err := ValidateDebt(d); err != nil {
			return err
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateDebtName, d.Name)
		}
		seen[d.Name] = true
	}

	return nil
}

// ValidateRun checks the extra budget and the month ceiling.
func ValidateRun(extra decimal.Decimal, maxMonths int) error {
	if extra.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrNegativeExtra, extra)
	}

	if maxMonths <= 0 || maxMonths > MaxMonthsLimit {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidMaxMonths, maxMonths, MaxMonthsLimit)
	}

	return nil
}
