package scorecardservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/parsers"
	scorecarddb "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/repositories"
	roundtime "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/time_utils"
	golfmetrics "github.com/Black-And-White-Club/golf-tracker/app/shared/metrics"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Clock abstracts the current time so round dates are testable.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// ScorecardService implements the Service interface.
type ScorecardService struct {
	repo    scorecarddb.Repository
	logger  *slog.Logger
	metrics golfmetrics.ScorecardMetrics
	tracer  trace.Tracer
	clock   Clock
	dates   roundtime.DateParserInterface
	files   *parsers.Factory
}

// NewScorecardService creates a new ScorecardService.
func NewScorecardService(
	repo scorecarddb.Repository,
	logger *slog.Logger,
	metrics golfmetrics.ScorecardMetrics,
	tracer trace.Tracer,
	clock Clock,
) *ScorecardService {
	if clock == nil {
		clock = RealClock{}
	}
	return &ScorecardService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		clock:   clock,
		dates:   roundtime.NewDateParser(),
		files:   parsers.NewFactory(),
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *ScorecardService,
	ctx context.Context,
	operationName string,
	attrs []attribute.KeyValue,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		append([]attribute.KeyValue{attribute.String("operation", operationName)}, attrs...)...,
	))
	defer span.End()

	logAttrs := make([]any, 0, len(attrs)+1)
	logAttrs = append(logAttrs, slog.String("operation", operationName))
	for _, kv := range attrs {
		logAttrs = append(logAttrs, slog.String(string(kv.Key), kv.Value.Emit()))
	}

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.DebugContext(ctx, operationName+" triggered", logAttrs...)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				append(logAttrs, slog.Any("error", err))...,
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			append(logAttrs, slog.Any("error", wrappedErr))...,
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			append(logAttrs, slog.Any("failure_payload", *result.Failure))...,
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
	}

	if result.IsSuccess() {
		s.logger.InfoContext(ctx, operationName+" completed successfully", logAttrs...)
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}

	return result, nil
}

var _ Service = (*ScorecardService)(nil)
