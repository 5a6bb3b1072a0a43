package scorecardservice

import (
	"context"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	statsservice "github.com/Black-And-White-Club/golf-tracker/app/modules/statistics/application"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
	"github.com/google/uuid"
)

// Service is the scorecard application surface used by the CLI.
//
// Operations return a domain failure in the result's Failure field and reserve
// the error return for storage and other infrastructure problems.
type Service interface {
	AddPlayer(ctx context.Context, name string, handicap *float64) (results.OperationResult[scorecardtypes.Player, error], error)
	ResolvePlayer(ctx context.Context, ref string) (results.OperationResult[scorecardtypes.Player, error], error)
	ListPlayers(ctx context.Context) ([]scorecardtypes.Player, error)

	StartRound(ctx context.Context, req StartRoundRequest) (results.OperationResult[ScorecardView, error], error)
	RecordScore(ctx context.Context, roundID uuid.UUID, hole, strokes int) (results.OperationResult[ScorecardView, error], error)
	CompleteRound(ctx context.Context, roundID uuid.UUID) (results.OperationResult[ScorecardView, error], error)
	GetScorecard(ctx context.Context, roundID uuid.UUID) (results.OperationResult[ScorecardView, error], error)
	ListScorecards(ctx context.Context, filter statsservice.Filter) ([]ScorecardView, error)

	PlayerStatistics(ctx context.Context, req StatisticsRequest) (results.OperationResult[PlayerStatistics, error], error)
	PlayerChart(ctx context.Context, ref string, filter statsservice.Filter) (results.OperationResult[[]byte, error], error)

	ImportScorecards(ctx context.Context, req ImportRequest) (results.OperationResult[ImportSummary, error], error)
	ExportScorecard(ctx context.Context, roundID uuid.UUID, format string) (results.OperationResult[ExportedFile, error], error)
}
