package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	scorecardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/application"
	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/courses"
	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
)

// Options controls how much demo data Seed creates.
type Options struct {
	Players         int
	RoundsPerPlayer int
	// Until is the date of the most recent round; earlier rounds are a week
	// apart.
	Until time.Time
}

type Result struct {
	Players []scorecardtypes.Player
	Rounds  []scorecardservice.ScorecardView
}

// Seed registers players and plays complete rounds for each through svc, the
// same path a user takes from the CLI.
func Seed(ctx context.Context, svc scorecardservice.Service, g *Generator, opts Options) (Result, error) {
	if opts.Until.IsZero() {
		opts.Until = time.Now()
	}

	var out Result
	for len(out.Players) < opts.Players {
		handicap := g.Handicap()
		res, err := svc.AddPlayer(ctx, g.PlayerName(), &handicap)
		if err != nil {
			return out, err
		}
		if res.IsFailure() {
			if errors.Is(*res.Failure, scorecardtypes.ErrDuplicatePlayer) {
				continue
			}
			return out, *res.Failure
		}
		out.Players = append(out.Players, *res.Success)
	}

	names := courses.Names()
	for _, player := range out.Players {
		for r := 0; r < opts.RoundsPerPlayer; r++ {
			played := opts.Until.AddDate(0, 0, -7*(opts.RoundsPerPlayer-1-r))
			view, err := playRound(ctx, svc, g, player, g.Pick(names), played)
			if err != nil {
				return out, fmt.Errorf("seed round for %s: %w", player.Name, err)
			}
			out.Rounds = append(out.Rounds, view)
		}
	}
	return out, nil
}

func playRound(ctx context.Context, svc scorecardservice.Service, g *Generator, player scorecardtypes.Player, course string, played time.Time) (scorecardservice.ScorecardView, error) {
	view, err := unwrap(svc.StartRound(ctx, scorecardservice.StartRoundRequest{
		Player: player.ID.String(),
		Course: course,
		Date:   played.Format("2006-01-02"),
	}))
	if err != nil {
		return view, err
	}

	handicap := 0.0
	if player.Handicap != nil {
		handicap = *player.Handicap
	}
	roundID := view.Card.RoundID
	for i, strokes := range g.Strokes(view.Card.Pars, handicap) {
		if _, err := unwrap(svc.RecordScore(ctx, roundID, i+1, strokes)); err != nil {
			return view, err
		}
	}
	return unwrap(svc.CompleteRound(ctx, roundID))
}

// unwrap folds a domain failure into the error return.
func unwrap[S any](res results.OperationResult[S, error], err error) (S, error) {
	var zero S
	if err != nil {
		return zero, err
	}
	if res.IsFailure() {
		return zero, *res.Failure
	}
	return *res.Success, nil
}
