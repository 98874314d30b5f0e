package usecase

const (
	// DefaultMaxMonths is the month ceiling used when none is configured (50 years).
	DefaultMaxMonths = 600
)

// Status is the terminal state of a simulation run.
type Status string

const (
	StatusPaidOff Status = "paid_off"
	StatusTimeout Status = "timeout"
)
