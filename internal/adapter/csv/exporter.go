package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/payoffsim/internal/domain"
)

var amortizationHeader = []string{
	"Month", "Date", "Loan", "Original Balance", "Interest Rate", "Min Payment",
	"Starting Balance", "Monthly Payment", "Interest Paid", "Principal Paid", "Ending Balance",
}

var summaryHeader = []string{
	"Loan", "Original Balance", "Rate", "Min Payment", "Payoff Month",
	"Months to Payoff", "Principal Paid", "Interest Paid", "Total Paid",
}

// Exporter implements usecase.ScheduleExporter, writing one amortization file and one
// summary file per strategy into a directory named after the run date.
type Exporter struct {
	dir    string
	now    func() time.Time
	logger zerolog.Logger
}

// NewExporter creates a new Exporter rooted at dir.
func NewExporter(dir string, logger zerolog.Logger) *Exporter {
	return &Exporter{dir: dir, now: time.Now, logger: logger}
}

// Dir returns the dated output directory for the current run.
func (e *Exporter) Dir() string {
	return filepath.Join(e.dir, e.now().Format(time.DateOnly))
}

// Export writes <strategy>_amortization.csv and <strategy>_summary.csv.
func (e *Exporter) Export(ctx context.Context, strategy string, schedule domain.Schedule, summary []domain.LoanSummary) error {
	dir := e.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	amortizationPath := filepath.Join(dir, strategy+"_amortization.csv")
	if err := writeFile(amortizationPath, func(w io.Writer) error { return WriteSchedule(w, schedule) }); err != nil {
		return err
	}

	summaryPath := filepath.Join(dir, strategy+"_summary.csv")
	if err := writeFile(summaryPath, func(w io.Writer) error { return WriteSummary(w, summary) }); err != nil {
		return err
	}

	e.logger.Debug().
		Str("strategy", strategy).
		Str("amortization", amortizationPath).
		Str("summary", summaryPath).
		Msg("exported schedule")

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

// WriteSchedule writes the amortization log with a header row.
func WriteSchedule(w io.Writer, schedule domain.Schedule) error {
	cw := stdcsv.NewWriter(w)
	if err := cw.Write(amortizationHeader); err != nil {
		return err
	}

	for _, r := range schedule {
		record := []string{
			strconv.Itoa(r.Month),
			r.Date,
			r.Loan,
			r.OriginalBalance.StringFixed(domain.MoneyPlaces),
			r.Rate.String(),
			r.MinPayment.StringFixed(domain.MoneyPlaces),
			r.StartingBalance.StringFixed(domain.MoneyPlaces),
			r.MonthlyPayment.StringFixed(domain.MoneyPlaces),
			r.InterestPaid.StringFixed(domain.MoneyPlaces),
			r.PrincipalPaid.StringFixed(domain.MoneyPlaces),
			r.EndingBalance.StringFixed(domain.MoneyPlaces),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary writes the per-loan summary with a header row.
func WriteSummary(w io.Writer, summary []domain.LoanSummary) error {
	cw := stdcsv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}

	for _, s := range summary {
		record := []string{
			s.Loan,
			s.OriginalBalance.StringFixed(domain.MoneyPlaces),
			s.Rate.String(),
			s.MinPayment.StringFixed(domain.MoneyPlaces),
			s.PayoffMonth,
			strconv.Itoa(s.MonthsToPayoff),
			s.PrincipalPaid.StringFixed(domain.MoneyPlaces),
			s.InterestPaid.StringFixed(domain.MoneyPlaces),
			s.TotalPaid.StringFixed(domain.MoneyPlaces),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
