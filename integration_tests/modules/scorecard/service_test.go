//go:build integration

package scorecardintegrationtests

import (
	"testing"

	scorecardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/application"
	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	statsservice "github.com/Black-And-White-Club/golf-tracker/app/modules/statistics/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorecardService_RoundOnPostgres(t *testing.T) {
	deps := SetupTestScorecardService(t)

	added, err := deps.Service.AddPlayer(deps.Ctx, "Dana", nil)
	require.NoError(t, err)
	require.True(t, added.IsSuccess())

	dup, err := deps.Service.AddPlayer(deps.Ctx, "dana", nil)
	require.NoError(t, err)
	require.True(t, dup.IsFailure())
	assert.ErrorIs(t, *dup.Failure, scorecardtypes.ErrDuplicatePlayer)

	started, err := deps.Service.StartRound(deps.Ctx, scorecardservice.StartRoundRequest{
		Player: "Dana",
		Pars:   []int{4, 3, 5},
		Date:   "yesterday",
	})
	require.NoError(t, err)
	require.True(t, started.IsSuccess(), "StartRound: %v", started.Failure)
	roundID := started.Success.Card.RoundID

	for hole, strokes := range []int{3, 3, 6} {
		res, err := deps.Service.RecordScore(deps.Ctx, roundID, hole+1, strokes)
		require.NoError(t, err)
		require.True(t, res.IsSuccess(), "RecordScore: %v", res.Failure)
	}
	done, err := deps.Service.CompleteRound(deps.Ctx, roundID)
	require.NoError(t, err)
	require.True(t, done.IsSuccess())
	require.NotNil(t, done.Success.ToPar)
	assert.Equal(t, 0, *done.Success.ToPar)

	stats, err := deps.Service.PlayerStatistics(deps.Ctx, scorecardservice.StatisticsRequest{Player: "DANA", Strict: true})
	require.NoError(t, err)
	require.True(t, stats.IsSuccess())
	assert.Equal(t, 1, stats.Success.Summary.CompletedRounds)
	assert.Equal(t, 1, stats.Success.Summary.Birdies)
	assert.Equal(t, 1, stats.Success.Summary.Bogeys)

	exported, err := deps.Service.ExportScorecard(deps.Ctx, roundID, "xlsx")
	require.NoError(t, err)
	require.True(t, exported.IsSuccess())

	imported, err := deps.Service.ImportScorecards(deps.Ctx, scorecardservice.ImportRequest{
		FileName: exported.Success.FileName,
		Data:     exported.Success.Data,
	})
	require.NoError(t, err)
	require.True(t, imported.IsSuccess(), "ImportScorecards: %v", imported.Failure)

	views, err := deps.Service.ListScorecards(deps.Ctx, statsservice.Filter{})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
