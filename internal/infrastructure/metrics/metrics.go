package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/payoffsim/internal/usecase"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Simulation metrics
	SimulationsRun     *prometheus.CounterVec
	SimulationMonths   *prometheus.HistogramVec
	SimulationInterest *prometheus.HistogramVec
	SimulationDuration *prometheus.HistogramVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates and registers all Prometheus metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SimulationsRun: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoffsim_simulations_total",
				Help: "Total number of strategy simulations by outcome",
			},
			[]string{"strategy", "status"},
		),
		SimulationMonths: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payoffsim_simulation_months",
				Help:    "Months simulated until payoff or ceiling",
				Buckets: []float64{12, 24, 36, 60, 120, 240, 360, 600},
			},
			[]string{"strategy"},
		),
		SimulationInterest: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payoffsim_simulation_interest",
				Help:    "Total interest paid per simulation",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"strategy"},
		),
		SimulationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payoffsim_simulation_duration_seconds",
				Help:    "Wall time of a single strategy simulation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoffsim_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payoffsim_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
	}
}

// ObserveSimulation implements usecase.MetricsRecorder.
func (m *Metrics) ObserveSimulation(strategy string, status usecase.Status, months int, interest float64, duration time.Duration) {
	m.SimulationsRun.WithLabelValues(strategy, string(status)).Inc()
	m.SimulationMonths.WithLabelValues(strategy).Observe(float64(months))
	m.SimulationInterest.WithLabelValues(strategy).Observe(interest)
	m.SimulationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}
