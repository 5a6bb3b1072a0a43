package scorecarddb

import (
	"context"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/google/uuid"
)

// Repository persists players and scorecards.
//
// Lookups of missing entities return ErrNotFound. Storage and encoding
// failures wrap scorecardtypes.ErrPersistence. Listings are sorted: players by
// name, scorecards by date then round ID.
type Repository interface {
	SavePlayer(ctx context.Context, player scorecardtypes.Player) error
	GetPlayer(ctx context.Context, id uuid.UUID) (scorecardtypes.Player, error)
	FindPlayerByName(ctx context.Context, name string) (scorecardtypes.Player, error)
	ListPlayers(ctx context.Context) ([]scorecardtypes.Player, error)

	SaveScorecard(ctx context.Context, scorecard *scorecardtypes.Scorecard) error
	GetScorecard(ctx context.Context, roundID uuid.UUID) (*scorecardtypes.Scorecard, error)
	ListScorecards(ctx context.Context) ([]*scorecardtypes.Scorecard, error)
	ListScorecardsByPlayer(ctx context.Context, playerID uuid.UUID) ([]*scorecardtypes.Scorecard, error)
}
