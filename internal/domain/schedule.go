package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places kept when rows and summaries are emitted.
const MoneyPlaces = 2

// StartMonthLayout is the accepted format of a configured start month.
const StartMonthLayout = "2006-01"

// ScheduleRow is one loan's line in the amortization log for one month.
// Monetary fields are rounded to MoneyPlaces.
type ScheduleRow struct {
	Month           int
	Date            string
	Loan            string
	OriginalBalance decimal.Decimal
	Rate            decimal.Decimal
	MinPayment      decimal.Decimal
	StartingBalance decimal.Decimal
	MonthlyPayment  decimal.Decimal
	InterestPaid    decimal.Decimal
	PrincipalPaid   decimal.Decimal
	EndingBalance   decimal.Decimal
}

// Schedule is the append-only log of a simulation run.
type Schedule []ScheduleRow

// MonthLabel formats month index (1 = start) as an abbreviated month and year, e.g. "Jan 2025".
func MonthLabel(start time.Time, month int) string {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, month-1, 0).Format("Jan 2006")
}

// ParseStartMonth parses a YYYY-MM value. An empty value selects the month of now.
func ParseStartMonth(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}

	start, err := time.Parse(StartMonthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM", ErrInvalidStartMonth, value)
	}
	return start, nil
}

// RowsForMonth turns an applied plan into log rows. Accounts closed this month are included.
func RowsForMonth(plan Plan, month int, start time.Time) []ScheduleRow {
	label := MonthLabel(start, month)
	rows := make([]ScheduleRow, 0, len(plan))
	for _, e := range plan {
		a := e.Account
		rows = append(rows, ScheduleRow{
			Month:           month,
			Date:            label,
			Loan:            a.Name,
			OriginalBalance: a.OriginalBalance.Round(MoneyPlaces),
			Rate:            a.Rate,
			MinPayment:      a.MinPayment.Round(MoneyPlaces),
			StartingBalance: e.StartingBalance.Round(MoneyPlaces),
			MonthlyPayment:  e.TotalPayment.Round(MoneyPlaces),
			InterestPaid:    e.Interest.Round(MoneyPlaces),
			PrincipalPaid:   e.PrincipalPaid.Round(MoneyPlaces),
			EndingBalance:   a.Remaining.Round(MoneyPlaces),
		})
	}
	return rows
}

// LastMonth returns the highest month index in the schedule, zero when empty.
func (s Schedule) LastMonth() int {
	last := 0
	for _, r := range s {
		if r.Month > last {
			last = r.Month
		}
	}
	return last
}

// TotalInterest sums the rounded interest of every row.
func (s Schedule) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s {
		total = total.Add(r.InterestPaid)
	}
	return total
}

// ForLoan returns the rows of one loan, in month order.
func (s Schedule) ForLoan(name string) Schedule {
	var rows Schedule
	for _, r := range s {
		if r.Loan == name {
			rows = append(rows, r)
		}
	}
	return rows
}

// LoanSummary is the per-loan outcome of a simulation run.
type LoanSummary struct {
	Loan            string
	OriginalBalance decimal.Decimal
	Rate            decimal.Decimal
	MinPayment      decimal.Decimal
	PayoffMonth     string // empty unless the loan was paid off
	MonthsToPayoff  int
	PrincipalPaid   decimal.Decimal
	InterestPaid    decimal.Decimal
	TotalPaid       decimal.Decimal
	PaidOff         bool
}
