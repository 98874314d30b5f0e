// Package console prints strategy comparisons for humans.
package console

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iho/payoffsim/internal/domain"
	"github.com/iho/payoffsim/internal/usecase"
)

// Printer writes an aligned comparison table.
type Printer struct {
	w       io.Writer
	numbers *message.Printer
}

// NewPrinter creates a new Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, numbers: message.NewPrinter(language.English)}
}

// PrintComparison writes one line per outcome in the order given, followed by the best strategy.
func (p *Printer) PrintComparison(result *usecase.ComparisonResult) error {
	if _, err := fmt.Fprintf(p.w, "Strategy comparison (run %s)\n", result.RunID); err != nil {
		return err
	}

	for _, o := range result.Outcomes {
		if _, err := fmt.Fprintln(p.w, p.line(o)); err != nil {
			return err
		}
	}

	best := result.Best()
	if best == nil {
		_, err := fmt.Fprintln(p.w, "No strategy paid off every loan within the month ceiling.")
		return err
	}

	_, err := fmt.Fprintf(p.w, "Best: %s ($%s interest, %d months)\n", best.Strategy, p.money(best.TotalInterest.InexactFloat64()), best.Months)
	return err
}

func (p *Printer) line(o usecase.StrategyOutcome) string {
	label := o.PayoffMonth
	if label == "" {
		label = "-"
	}
	if o.Status == usecase.StatusTimeout {
		label += ", not paid off"
	}

	interest := p.money(o.TotalInterest.Round(domain.MoneyPlaces).InexactFloat64())
	return fmt.Sprintf("%-25s → Interest: $%10s   Months: %5d (%s)", o.Strategy, interest, o.Months, label)
}

func (p *Printer) money(v float64) string {
	return p.numbers.Sprintf("%.2f", v)
}
