// Package golfmetrics records scorecard operation metrics.
package golfmetrics

import (
	"context"
	"time"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ScorecardMetrics is the metrics surface used by the scorecard service.
type ScorecardMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordHoleScore(ctx context.Context, result scorecardtypes.HoleResult)
	RecordRoundCompleted(ctx context.Context, course string, strokes, toPar int)
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordHoleScore(context.Context, scorecardtypes.HoleResult)     {}
func (NoOpMetrics) RecordRoundCompleted(context.Context, string, int, int)         {}

const namespace = "golf_tracker"

// PrometheusMetrics implements ScorecardMetrics with client_golang collectors.
type PrometheusMetrics struct {
	operations      *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	holeResults     *prometheus.CounterVec
	roundsCompleted *prometheus.CounterVec
	roundToPar      prometheus.Histogram
}

// NewPrometheusMetrics registers the collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scorecard",
			Name:      "operations_total",
			Help:      "Scorecard service operations by outcome.",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scorecard",
			Name:      "operation_duration_seconds",
			Help:      "Scorecard service operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"operation"}),
		holeResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scorecard",
			Name:      "hole_results_total",
			Help:      "Recorded hole scores by result relative to par.",
		}, []string{"result"}),
		roundsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scorecard",
			Name:      "rounds_completed_total",
			Help:      "Completed rounds by course.",
		}, []string{"course"}),
		roundToPar: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scorecard",
			Name:      "round_to_par",
			Help:      "Completed round score relative to par.",
			Buckets:   prometheus.LinearBuckets(-10, 5, 9),
		}),
	}
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.operations.WithLabelValues(operation, "attempt").Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.operations.WithLabelValues(operation, "success").Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.operations.WithLabelValues(operation, "failure").Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordHoleScore(_ context.Context, result scorecardtypes.HoleResult) {
	m.holeResults.WithLabelValues(result.String()).Inc()
}

func (m *PrometheusMetrics) RecordRoundCompleted(_ context.Context, course string, _ int, toPar int) {
	m.roundsCompleted.WithLabelValues(course).Inc()
	m.roundToPar.Observe(float64(toPar))
}

// WriteTextfile dumps everything gathered by g in the node exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
