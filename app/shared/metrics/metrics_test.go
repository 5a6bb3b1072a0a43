package golfmetrics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.RecordOperationAttempt(ctx, "RecordScore")
	m.RecordOperationAttempt(ctx, "RecordScore")
	m.RecordOperationSuccess(ctx, "RecordScore")
	m.RecordOperationFailure(ctx, "RecordScore")
	m.RecordOperationDuration(ctx, "RecordScore", 3*time.Millisecond)
	m.RecordHoleScore(ctx, scorecardtypes.ClassifyHole(3, 4))
	m.RecordHoleScore(ctx, scorecardtypes.ClassifyHole(3, 5))
	m.RecordHoleScore(ctx, scorecardtypes.ClassifyHole(7, 4))
	m.RecordRoundCompleted(ctx, "Pebble Beach", 75, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("RecordScore", "attempt")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("RecordScore", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("RecordScore", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.holeResults.WithLabelValues("birdie")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.holeResults.WithLabelValues("eagle_or_better")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.holeResults.WithLabelValues("double_bogey_or_worse")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roundsCompleted.WithLabelValues("Pebble Beach")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.roundToPar))
}

func TestPrometheusMetrics_HoleResultLabels(t *testing.T) {
	tests := []struct {
		strokes, par int
		label        string
	}{
		{strokes: 1, par: 4, label: "eagle_or_better"},
		{strokes: 3, par: 4, label: "birdie"},
		{strokes: 4, par: 4, label: "par"},
		{strokes: 5, par: 4, label: "bogey"},
		{strokes: 9, par: 4, label: "double_bogey_or_worse"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			m := NewPrometheusMetrics(prometheus.NewRegistry())
			m.RecordHoleScore(context.Background(), scorecardtypes.ClassifyHole(tt.strokes, tt.par))

			assert.Equal(t, 1.0, testutil.ToFloat64(m.holeResults.WithLabelValues(tt.label)))
			assert.Equal(t, 1, testutil.CollectAndCount(m.holeResults))
		})
	}
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)
	m.RecordOperationSuccess(context.Background(), "AddPlayer")

	path := filepath.Join(t.TempDir(), "golf.prom")
	require.NoError(t, WriteTextfile(path, reg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `golf_tracker_scorecard_operations_total{operation="AddPlayer",outcome="success"} 1`))
}

func TestNoOpMetrics(t *testing.T) {
	var m ScorecardMetrics = NoOpMetrics{}
	m.RecordOperationAttempt(context.Background(), "anything")
	m.RecordRoundCompleted(context.Background(), "x", 70, -2)
}
