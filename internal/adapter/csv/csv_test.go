package csv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/payoffsim/internal/domain"
)

func TestReadDebts(t *testing.T) {
	input := "Rate,Loan,MinPayment,Balance,Notes\n" +
		"5,A,40,5000,car\n" +
		"10, B ,150,10000.50,\n"

	debts, err := ReadDebts(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, debts, 2)

	assert.Equal(t, "A", debts[0].Name)
	assert.True(t, debts[0].Balance.Equal(decimal.NewFromInt(5000)))
	assert.True(t, debts[0].Rate.Equal(decimal.NewFromInt(5)))
	assert.True(t, debts[0].MinPayment.Equal(decimal.NewFromInt(40)))

	assert.Equal(t, "B", debts[1].Name)
	assert.Equal(t, "10000.5", debts[1].Balance.String())
}

func TestReadDebts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty file", "", domain.ErrNoDebts},
		{"header only", "Loan,Balance,Rate,MinPayment\n", domain.ErrNoDebts},
		{"missing column", "Loan,Balance,Rate\nA,1,1\n", ErrMissingColumn},
		{"empty value", "Loan,Balance,Rate,MinPayment\nA,,1,1\n", ErrMissingColumn},
		{"negative balance", "Loan,Balance,Rate,MinPayment\nA,-5,1,1\n", domain.ErrNegativeBalance},
		{"duplicate", "Loan,Balance,Rate,MinPayment\nA,5,1,1\nA,6,1,1\n", domain.ErrDuplicateDebtName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDebts(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := ReadDebts(strings.NewReader("Loan,Balance,Rate,MinPayment\nA,abc,1,1\n"))
	assert.ErrorContains(t, err, "invalid Balance")
}

func TestDebtSource_Fallback(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.csv")} {
		debts, err := NewDebtSource(path, zerolog.Nop()).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, FallbackDebts(), debts)
		assert.NoError(t, domain.ValidateDebts(debts))
	}
}

func TestDebtSource_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debts.csv")
	require.NoError(t, os.WriteFile(path, []byte("Loan,Balance,Rate,MinPayment\nOnly,100,0,50\n"), 0o600))

	debts, err := NewDebtSource(path, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, "Only", debts[0].Name)
}

func TestWriteSchedule(t *testing.T) {
	schedule := domain.Schedule{{
		Month:           1,
		Date:            "Jan 2025",
		Loan:            "A",
		OriginalBalance: decimal.NewFromInt(5000),
		Rate:            decimal.RequireFromString("5.5"),
		MinPayment:      decimal.NewFromInt(40),
		StartingBalance: decimal.NewFromInt(5000),
		MonthlyPayment:  decimal.NewFromInt(40),
		InterestPaid:    decimal.RequireFromString("22.92"),
		PrincipalPaid:   decimal.RequireFromString("17.08"),
		EndingBalance:   decimal.RequireFromString("4982.92"),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, schedule))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Month,Date,Loan,Original Balance,Interest Rate,Min Payment,Starting Balance,Monthly Payment,Interest Paid,Principal Paid,Ending Balance", lines[0])
	assert.Equal(t, "1,Jan 2025,A,5000.00,5.5,40.00,5000.00,40.00,22.92,17.08,4982.92", lines[1])
}

func TestExporter_WritesDatedFiles(t *testing.T) {
	root := t.TempDir()
	exporter := NewExporter(root, zerolog.Nop())
	exporter.now = func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC) }

	summary := []domain.LoanSummary{{
		Loan:           "A",
		PayoffMonth:    "Mar 2025",
		MonthsToPayoff: 3,
		TotalPaid:      decimal.NewFromInt(300),
	}}

	require.NoError(t, exporter.Export(context.Background(), "snowball", domain.Schedule{}, summary))

	dir := filepath.Join(root, "2026-10-19")
	assert.Equal(t, dir, exporter.Dir())

	amortization, err := os.ReadFile(filepath.Join(dir, "snowball_amortization.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(amortization), "Month,Date,Loan"))

	summaryFile, err := os.ReadFile(filepath.Join(dir, "snowball_summary.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(summaryFile), "A,0.00,0,0.00,Mar 2025,3,0.00,0.00,300.00")
}
