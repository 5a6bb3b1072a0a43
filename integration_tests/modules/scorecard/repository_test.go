//go:build integration

package scorecardintegrationtests

import (
	"strings"
	"testing"
	"time"

	scorecarddb "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/integration_tests/testutils"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBunRepository_Players(t *testing.T) {
	deps := SetupTestScorecardService(t)
	gen := testutils.NewTestDataGenerator(42)
	players := gen.GeneratePlayers(5)

	for _, p := range players {
		require.NoError(t, deps.Repo.SavePlayer(deps.Ctx, p))
	}

	got, err := deps.Repo.GetPlayer(deps.Ctx, players[0].ID)
	require.NoError(t, err)
	if diff := cmp.Diff(players[0], got); diff != "" {
		t.Errorf("player mismatch (-want +got):\n%s", diff)
	}

	found, err := deps.Repo.FindPlayerByName(deps.Ctx, strings.ToUpper(players[1].Name))
	require.NoError(t, err)
	assert.Equal(t, players[1].ID, found.ID)

	all, err := deps.Repo.ListPlayers(deps.Ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(players))

	_, err = deps.Repo.GetPlayer(deps.Ctx, uuid.New())
	assert.ErrorIs(t, err, scorecarddb.ErrNotFound)
}

func TestBunRepository_Scorecards(t *testing.T) {
	deps := SetupTestScorecardService(t)
	gen := testutils.NewTestDataGenerator(7)
	player := gen.GeneratePlayers(1)[0]
	require.NoError(t, deps.Repo.SavePlayer(deps.Ctx, player))

	partial := gen.GenerateScorecard(player.ID, testutils.ScorecardOptions{
		Course:   "Pebble Beach",
		PlayedOn: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Recorded: 9,
	})
	done := gen.GenerateScorecard(player.ID, testutils.ScorecardOptions{
		Course:   "St Andrews",
		PlayedOn: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
		Recorded: -1,
		Complete: true,
	})
	require.NoError(t, deps.Repo.SaveScorecard(deps.Ctx, partial))
	require.NoError(t, deps.Repo.SaveScorecard(deps.Ctx, done))

	loaded, err := deps.Repo.GetScorecard(deps.Ctx, partial.RoundID())
	require.NoError(t, err)
	if diff := cmp.Diff(partial.Data(), loaded.Data()); diff != "" {
		t.Errorf("scorecard mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 9, loaded.RecordedHoles())

	require.NoError(t, partial.RecordScore(10, 4))
	require.NoError(t, deps.Repo.SaveScorecard(deps.Ctx, partial))
	loaded, err = deps.Repo.GetScorecard(deps.Ctx, partial.RoundID())
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.RecordedHoles())

	cards, err := deps.Repo.ListScorecardsByPlayer(deps.Ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, partial.RoundID(), cards[0].RoundID())
	assert.True(t, cards[1].IsComplete())

	_, err = deps.Repo.GetScorecard(deps.Ctx, uuid.New())
	assert.ErrorIs(t, err, scorecarddb.ErrNotFound)
}
