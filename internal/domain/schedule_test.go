package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthLabel(t *testing.T) {
	start := time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Nov 2025", MonthLabel(start, 1))
	assert.Equal(t, "Dec 2025", MonthLabel(start, 2))
	assert.Equal(t, "Jan 2026", MonthLabel(start, 3))
	assert.Equal(t, "Nov 2075", MonthLabel(start, 601))
}

func TestMonthLabel_EndOfMonthStart(t *testing.T) {
	// Jan 31 + 1 month must not skip February.
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Feb 2025", MonthLabel(start, 2))
}

func TestRowsForMonth_RoundsAtEmission(t *testing.T) {
	ledger := NewLedger(threeLoans())
	plan := ledger.BuildPlan()
	ledger.ApplyPayments(plan, nil, d("0"))

	rows := RowsForMonth(plan, 1, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, rows, 3)

	a := rows[0]
	assert.Equal(t, "A", a.Loan)
	assert.Equal(t, "Jan 2025", a.Date)
	assert.Equal(t, "5000.00", a.StartingBalance.StringFixed(2))
	assert.Equal(t, "40.00", a.MonthlyPayment.StringFixed(2))
	assert.Equal(t, "20.83", a.InterestPaid.StringFixed(2))
	assert.Equal(t, "19.17", a.PrincipalPaid.StringFixed(2))
	assert.Equal(t, "4980.83", a.EndingBalance.StringFixed(2))

	// Ledger state itself stays unrounded.
	assert.NotEqual(t, "4980.83", ledger[0].Remaining.String())
}

func TestSchedule_Aggregates(t *testing.T) {
	s := Schedule{
		{Month: 1, Loan: "A", InterestPaid: d("1.25")},
		{Month: 1, Loan: "B", InterestPaid: d("2.00")},
		{Month: 2, Loan: "B", InterestPaid: d("1.75")},
	}

	assert.Equal(t, 2, s.LastMonth())
	assert.True(t, s.TotalInterest().Equal(d("5")))
	assert.Len(t, s.ForLoan("B"), 2)
	assert.Empty(t, s.ForLoan("missing"))
	assert.Equal(t, 0, Schedule{}.LastMonth())
}

func TestParseStartMonth(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC)

	start, err := ParseStartMonth("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), start)

	start, err = ParseStartMonth("2024-03", now)
	require.NoError(t, err)
	assert.Equal(t, "Mar 2024", MonthLabel(start, 1))
	assert.Equal(t, "Feb 2025", MonthLabel(start, 12))

	_, err = ParseStartMonth("March", now)
	assert.ErrorIs(t, err, ErrInvalidStartMonth)
}
