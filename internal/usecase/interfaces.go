package usecase

import (
	"context"
	"time"

	"github.com/iho/payoffsim/internal/domain"
)

// DebtSource supplies the debt list for a run.
type DebtSource interface {
	Load(ctx context.Context) ([]domain.Debt, error)
}

// ScheduleExporter persists one strategy's schedule and per-loan summary.
type ScheduleExporter interface {
	Export(ctx context.Context, strategy string, schedule domain.Schedule, summary []domain.LoanSummary) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// MetricsRecorder records the outcome of one strategy run.
type MetricsRecorder interface {
	ObserveSimulation(strategy string, status Status, months int, interest float64, duration time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveSimulation(string, Status, int, float64, time.Duration) {}

// ReplayEntry is the stored outcome of a keyed request.
type ReplayEntry struct {
	// Fingerprint identifies the request body the key was first used with.
	Fingerprint string `json:"fingerprint"`
	Pending     bool   `json:"pending,omitempty"`
	Status      int    `json:"status,omitempty"`
	Body        []byte `json:"body,omitempty"`
}

// ReplayStore remembers responses to requests carrying an idempotency key.
type ReplayStore interface {
	// Reserve claims key with a pending entry. When the key is already taken the existing
	// entry is returned instead.
	Reserve(ctx context.Context, key string, entry ReplayEntry, ttl time.Duration) (*ReplayEntry, error)
	// Save replaces the pending entry with the final response.
	Save(ctx context.Context, key string, entry ReplayEntry, ttl time.Duration) error
	// Release drops a reservation so the request can be retried.
	Release(ctx context.Context, key string) error
}
