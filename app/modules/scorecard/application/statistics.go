package scorecardservice

import (
	"context"

	statsservice "github.com/Black-And-White-Club/golf-tracker/app/modules/statistics/application"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
	"go.opentelemetry.io/otel/attribute"
)

// PlayerStatistics summarizes a player's rounds matching the request filter.
// The filter's PlayerID is replaced by the resolved player.
func (s *ScorecardService) PlayerStatistics(ctx context.Context, req StatisticsRequest) (results.OperationResult[PlayerStatistics, error], error) {
	return withTelemetry(s, ctx, "PlayerStatistics", []attribute.KeyValue{
		attribute.String("player", req.Player),
		attribute.Bool("strict", req.Strict),
	}, func(ctx context.Context) (results.OperationResult[PlayerStatistics, error], error) {
		player, err := s.resolvePlayer(ctx, req.Player)
		if err != nil {
			return fail[PlayerStatistics](err)
		}
		cards, err := s.repo.ListScorecardsByPlayer(ctx, player.ID)
		if err != nil {
			return results.OperationResult[PlayerStatistics, error]{}, err
		}
		filter := req.Filter
		filter.PlayerID = player.ID
		selected := statsservice.Select(cards, filter)
		if req.Strict {
			if err := statsservice.RequireComplete(selected); err != nil {
				return fail[PlayerStatistics](err)
			}
		}
		summary := statsservice.Summarize(selected)
		return results.SuccessResult[PlayerStatistics, error](PlayerStatistics{Player: player, Summary: summary}), nil
	})
}

// PlayerChart renders the player's round totals against par as a PNG.
func (s *ScorecardService) PlayerChart(ctx context.Context, ref string, filter statsservice.Filter) (results.OperationResult[[]byte, error], error) {
	return withTelemetry(s, ctx, "PlayerChart", []attribute.KeyValue{attribute.String("player", ref)},
		func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
			player, err := s.resolvePlayer(ctx, ref)
			if err != nil {
				return fail[[]byte](err)
			}
			cards, err := s.repo.ListScorecardsByPlayer(ctx, player.ID)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, err
			}
			filter.PlayerID = player.ID
			png, err := statsservice.RoundTotalsChart(statsservice.Select(cards, filter), statsservice.DefaultPalette)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, err
			}
			return results.SuccessResult[[]byte, error](png), nil
		})
}
