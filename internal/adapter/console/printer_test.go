package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/payoffsim/internal/usecase"
)

func TestPrintComparison(t *testing.T) {
	result := &usecase.ComparisonResult{
		RunID: "01TESTRUN",
		Outcomes: []usecase.StrategyOutcome{
			{Strategy: "snowball", Status: usecase.StatusPaidOff, Months: 30, PayoffMonth: "Jun 2027", TotalInterest: decimal.RequireFromString("12345.678")},
			{Strategy: "avalanche", Status: usecase.StatusPaidOff, Months: 28, PayoffMonth: "Apr 2027", TotalInterest: decimal.RequireFromString("999.5")},
			{Strategy: "reverse_avalanche", Status: usecase.StatusTimeout, Months: 600, PayoffMonth: "Dec 2074", TotalInterest: decimal.NewFromInt(1000000)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).PrintComparison(result))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Strategy comparison (run 01TESTRUN)", lines[0])
	assert.Equal(t, "snowball                  → Interest: $ 12,345.68   Months:    30 (Jun 2027)", lines[1])
	assert.Equal(t, "avalanche                 → Interest: $    999.50   Months:    28 (Apr 2027)", lines[2])
	assert.Equal(t, "reverse_avalanche         → Interest: $1,000,000.00   Months:   600 (Dec 2074, not paid off)", lines[3])
	assert.Equal(t, "Best: avalanche ($999.50 interest, 28 months)", lines[4])
}

func TestPrintComparison_NoWinner(t *testing.T) {
	result := &usecase.ComparisonResult{
		Outcomes: []usecase.StrategyOutcome{
			{Strategy: "snowball", Status: usecase.StatusTimeout, Months: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).PrintComparison(result))

	assert.Contains(t, buf.String(), "(-, not paid off)")
	assert.Contains(t, buf.String(), "No strategy paid off every loan")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintComparison_WriteError(t *testing.T) {
	err := NewPrinter(failingWriter{}).PrintComparison(&usecase.ComparisonResult{})
	assert.EqualError(t, err, "closed")
}
