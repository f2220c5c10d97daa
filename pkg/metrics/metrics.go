package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeOK labels a successful estimate; failures are labelled with their error code.
const OutcomeOK = "ok"

var (
	EstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solar_estimates_total",
			Help: "Total number of estimate calculations by outcome",
		},
		[]string{"outcome"},
	)

	EstimatedSystemKW = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "solar_estimated_system_kw",
			Help:    "Distribution of estimated system sizes in kW",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)

	SolarHourLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solar_hour_lookups_total",
			Help: "Total number of solar hour lookups by period",
		},
		[]string{"period"},
	)

	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solar_reports_generated_total",
			Help: "Total number of estimate reports rendered by format",
		},
		[]string{"format"},
	)

	HTTPRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solar_http_retries_total",
			Help: "Requests replayed after a server fault, by path",
		},
		[]string{"path"},
	)
)

// ObserveEstimate records the outcome of one estimate. systemKW is only observed on success.
func ObserveEstimate(outcome string, systemKW float64) {
	if outcome == "" {
		outcome = "internal_error"
	}
	EstimatesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		EstimatedSystemKW.Observe(systemKW)
	}
}
