//go:build integration

package scorecardintegrationtests

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	scorecardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/application"
	scorecarddb "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/repositories"
	golfmetrics "github.com/Black-And-White-Club/golf-tracker/app/shared/metrics"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// TestDeps holds dependencies needed by individual tests.
type TestDeps struct {
	Ctx     context.Context
	Repo    *scorecarddb.BunRepository
	Service *scorecardservice.ScorecardService
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

// SetupTestScorecardService empties the tables and wires a service over the
// shared database.
func SetupTestScorecardService(t *testing.T) TestDeps {
	t.Helper()
	ctx := testEnv.Ctx
	require.NoError(t, testEnv.Reset(ctx))

	repo := scorecarddb.NewBunRepository(testEnv.DB)
	service := scorecardservice.NewScorecardService(
		repo,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		golfmetrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		fixedClock(time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)),
	)
	return TestDeps{Ctx: ctx, Repo: repo, Service: service}
}
