package scorecardservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// AddPlayer registers a player. Names are unique ignoring case.
func (s *ScorecardService) AddPlayer(ctx context.Context, name string, handicap *float64) (results.OperationResult[scorecardtypes.Player, error], error) {
	return withTelemetry(s, ctx, "AddPlayer", []attribute.KeyValue{attribute.String("player_name", name)},
		func(ctx context.Context) (results.OperationResult[scorecardtypes.Player, error], error) {
			player, err := scorecardtypes.NewPlayer(name, handicap)
			if err != nil {
				return fail[scorecardtypes.Player](err)
			}

			existing, err := s.repo.FindPlayerByName(ctx, player.Name)
			switch {
			case err == nil:
				return fail[scorecardtypes.Player](fmt.Errorf("%w: %q is already registered as %s", scorecardtypes.ErrDuplicatePlayer, player.Name, existing.ID))
			case !errors.Is(err, scorecardtypes.ErrNotFound):
				return results.OperationResult[scorecardtypes.Player, error]{}, err
			}

			if err := s.repo.SavePlayer(ctx, player); err != nil {
				return results.OperationResult[scorecardtypes.Player, error]{}, err
			}
			return results.SuccessResult[scorecardtypes.Player, error](player), nil
		})
}

// ResolvePlayer looks a player up by ID, then by name.
func (s *ScorecardService) ResolvePlayer(ctx context.Context, ref string) (results.OperationResult[scorecardtypes.Player, error], error) {
	player, err := s.resolvePlayer(ctx, ref)
	if err != nil {
		return fail[scorecardtypes.Player](err)
	}
	return results.SuccessResult[scorecardtypes.Player, error](player), nil
}

func (s *ScorecardService) ListPlayers(ctx context.Context) ([]scorecardtypes.Player, error) {
	return s.repo.ListPlayers(ctx)
}

func (s *ScorecardService) resolvePlayer(ctx context.Context, ref string) (scorecardtypes.Player, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return scorecardtypes.Player{}, scorecardtypes.ErrEmptyName
	}
	if id, err := uuid.Parse(ref); err == nil {
		return s.repo.GetPlayer(ctx, id)
	}
	return s.repo.FindPlayerByName(ctx, ref)
}

// playerFor returns the card's player, or a bare record carrying only the ID
// when the player is no longer stored.
func (s *ScorecardService) playerFor(ctx context.Context, id uuid.UUID) (scorecardtypes.Player, error) {
	player, err := s.repo.GetPlayer(ctx, id)
	if errors.Is(err, scorecardtypes.ErrNotFound) {
		return scorecardtypes.Player{ID: id}, nil
	}
	return player, err
}
