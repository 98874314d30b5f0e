package domain

import "errors"

var (
	// Input errors
	ErrNoDebts            = errors.New("no debts supplied")
	ErrTooManyDebts       = errors.New("too many debts")
	ErrInvalidDebtName    = errors.New("invalid debt name")
	ErrDuplicateDebtName  = errors.New("duplicate debt name")
	ErrNegativeBalance    = errors.New("balance must not be negative")
	ErrNegativeRate       = errors.New("rate must not be negative")
	ErrNegativeMinPayment = errors.New("minimum payment must not be negative")

	// Run configuration errors
	ErrNegativeExtra     = errors.New("extra budget must not be negative")
	ErrInvalidMaxMonths  = errors.New("month ceiling out of range")
	ErrUnknownStrategy   = errors.New("unknown strategy")
	ErrInvalidStartMonth = errors.New("invalid start month")
)
