// Package observability exposes Prometheus metrics for itinerary rendering.
package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// Build outcomes used as the "outcome" label.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidDate     = "invalid_date"
	OutcomeInvalidDuration = "invalid_duration"
	OutcomeConfiguration   = "configuration"
	OutcomeError           = "error"
)

var (
	itineraryBuilds = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "itinerary",
		Subsystem: "engine",
		Name:      "builds_total",
		Help:      "Itinerary aggregation passes by outcome.",
	}, []string{"outcome"})
	itineraryBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "itinerary",
		Subsystem: "engine",
		Name:      "build_duration_seconds",
		Help:      "Wall time of one itinerary aggregation pass, including loading records.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	})
	itineraryItems = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "itinerary",
		Subsystem: "engine",
		Name:      "rendered_items",
		Help:      "Number of items in a successfully rendered itinerary.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(itineraryBuilds, itineraryBuildSeconds, itineraryItems)
}

// Outcome maps a pipeline error onto its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInvalidDate):
		return OutcomeInvalidDate
	case errors.Is(err, domain.ErrInvalidDuration):
		return OutcomeInvalidDuration
	case errors.Is(err, domain.ErrConfiguration):
		return OutcomeConfiguration
	default:
		return OutcomeError
	}
}

// RecordBuild counts one aggregation pass. items is ignored on failure.
func RecordBuild(err error, elapsed time.Duration, items int) {
	itineraryBuilds.WithLabelValues(Outcome(err)).Inc()
	itineraryBuildSeconds.Observe(elapsed.Seconds())
	if err == nil {
		itineraryItems.Observe(float64(items))
	}
}

// BuildCount returns the current value of the builds counter for outcome.
// Intended for tests and diagnostics.
func BuildCount(outcome string) prometheus.Counter {
	return itineraryBuilds.WithLabelValues(outcome)
}
