package scorecardservice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/courses"
	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	statsservice "github.com/Black-And-White-Club/golf-tracker/app/modules/statistics/application"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type viewResult = results.OperationResult[ScorecardView, error]

// StartRound creates and persists an empty scorecard for a player.
func (s *ScorecardService) StartRound(ctx context.Context, req StartRoundRequest) (viewResult, error) {
	return withTelemetry(s, ctx, "StartRound", []attribute.KeyValue{
		attribute.String("player", req.Player),
		attribute.String("course", req.Course),
	}, func(ctx context.Context) (viewResult, error) {
		player, err := s.resolvePlayer(ctx, req.Player)
		if err != nil {
			return fail[ScorecardView](err)
		}

		playedOn, err := s.dates.Parse(req.Date, s.clock.Now())
		if err != nil {
			return fail[ScorecardView](err)
		}

		layout := courses.Lookup(req.Course, req.Holes)
		fixed := courses.Known(req.Course)
		if len(req.Pars) > 0 {
			layout.Pars = req.Pars
			fixed = true
		}
		if fixed && req.Holes > 0 && req.Holes != len(layout.Pars) {
			return fail[ScorecardView](fmt.Errorf("%w: %d holes requested but %s has %d",
				scorecardtypes.ErrOutOfRange, req.Holes, layout.Name, len(layout.Pars)))
		}

		sc, err := scorecardtypes.NewScorecard(player.ID, scorecardtypes.NewRound(layout.Name, playedOn), layout.Pars)
		if err != nil {
			return fail[ScorecardView](err)
		}
		if err := s.repo.SaveScorecard(ctx, sc); err != nil {
			return viewResult{}, err
		}
		return results.SuccessResult[ScorecardView, error](newView(player, sc)), nil
	})
}

// RecordScore sets the strokes for one hole and persists the card.
func (s *ScorecardService) RecordScore(ctx context.Context, roundID uuid.UUID, hole, strokes int) (viewResult, error) {
	return withTelemetry(s, ctx, "RecordScore", []attribute.KeyValue{
		attribute.String("round_id", roundID.String()),
		attribute.String("hole", strconv.Itoa(hole)),
	}, func(ctx context.Context) (viewResult, error) {
		sc, err := s.repo.GetScorecard(ctx, roundID)
		if err != nil {
			return fail[ScorecardView](err)
		}
		if err := sc.RecordScore(hole, strokes); err != nil {
			return fail[ScorecardView](err)
		}
		if err := s.repo.SaveScorecard(ctx, sc); err != nil {
			return viewResult{}, err
		}

		par, _ := sc.Par(hole)
		s.metrics.RecordHoleScore(ctx, scorecardtypes.ClassifyHole(strokes, par))

		return s.view(ctx, sc)
	})
}

// CompleteRound locks a fully recorded card against further edits.
func (s *ScorecardService) CompleteRound(ctx context.Context, roundID uuid.UUID) (viewResult, error) {
	return withTelemetry(s, ctx, "CompleteRound", []attribute.KeyValue{
		attribute.String("round_id", roundID.String()),
	}, func(ctx context.Context) (viewResult, error) {
		sc, err := s.repo.GetScorecard(ctx, roundID)
		if err != nil {
			return fail[ScorecardView](err)
		}
		wasComplete := sc.IsComplete()
		if err := sc.Complete(); err != nil {
			return fail[ScorecardView](err)
		}
		if !wasComplete {
			if err := s.repo.SaveScorecard(ctx, sc); err != nil {
				return viewResult{}, err
			}
			toPar, _ := sc.ToPar()
			s.metrics.RecordRoundCompleted(ctx, sc.Round().Course, sc.Total(), toPar)
		}
		return s.view(ctx, sc)
	})
}

func (s *ScorecardService) GetScorecard(ctx context.Context, roundID uuid.UUID) (viewResult, error) {
	sc, err := s.repo.GetScorecard(ctx, roundID)
	if err != nil {
		return fail[ScorecardView](err)
	}
	return s.view(ctx, sc)
}

// ListScorecards returns the stored cards matching filter, oldest first.
func (s *ScorecardService) ListScorecards(ctx context.Context, filter statsservice.Filter) ([]ScorecardView, error) {
	var (
		cards []*scorecardtypes.Scorecard
		err   error
	)
	if filter.PlayerID != uuid.Nil {
		cards, err = s.repo.ListScorecardsByPlayer(ctx, filter.PlayerID)
	} else {
		cards, err = s.repo.ListScorecards(ctx)
	}
	if err != nil {
		return nil, err
	}

	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]scorecardtypes.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	selected := statsservice.Select(cards, filter)
	views := make([]ScorecardView, 0, len(selected))
	for _, sc := range selected {
		player, ok := byID[sc.PlayerID()]
		if !ok {
			player = scorecardtypes.Player{ID: sc.PlayerID()}
		}
		views = append(views, newView(player, sc))
	}
	return views, nil
}

func (s *ScorecardService) view(ctx context.Context, sc *scorecardtypes.Scorecard) (viewResult, error) {
	player, err := s.playerFor(ctx, sc.PlayerID())
	if err != nil {
		return viewResult{}, err
	}
	return results.SuccessResult[ScorecardView, error](newView(player, sc)), nil
}
