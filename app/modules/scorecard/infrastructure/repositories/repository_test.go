package scorecarddb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T) Repository
}

func backends() []backend {
	return []backend{
		{name: "memory", open: func(t *testing.T) Repository { return NewMemoryRepository() }},
		{name: "file", open: func(t *testing.T) Repository {
			repo, err := NewFileRepository(filepath.Join(t.TempDir(), "data"))
			require.NoError(t, err)
			return repo
		}},
		{name: "sqlite", open: func(t *testing.T) Repository {
			db, err := OpenDB(DriverSQLite, "file::memory:")
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })
			require.NoError(t, CreateSchema(context.Background(), db))
			return NewBunRepository(db)
		}},
	}
}

func mustPlayer(t *testing.T, name string, handicap *float64) scorecardtypes.Player {
	t.Helper()
	p, err := scorecardtypes.NewPlayer(name, handicap)
	require.NoError(t, err)
	return p
}

func mustCard(t *testing.T, playerID uuid.UUID, course string, day time.Time, strokes []int) *scorecardtypes.Scorecard {
	t.Helper()
	pars := make([]int, len(strokes))
	for i := range pars {
		pars[i] = 4
	}
	sc, err := scorecardtypes.NewScorecard(playerID, scorecardtypes.NewRound(course, day), pars)
	require.NoError(t, err)
	for i, s := range strokes {
		if s == 0 {
			continue
		}
		require.NoError(t, sc.RecordScore(i+1, s))
	}
	return sc
}

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_Players(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			hcp := 12.4
			alice := mustPlayer(t, "Alice", &hcp)
			bob := mustPlayer(t, "bob", nil)
			require.NoError(t, repo.SavePlayer(ctx, bob))
			require.NoError(t, repo.SavePlayer(ctx, alice))

			got, err := repo.GetPlayer(ctx, alice.ID)
			require.NoError(t, err)
			if diff := cmp.Diff(alice, got); diff != "" {
				t.Errorf("GetPlayer mismatch (-want +got):\n%s", diff)
			}

			found, err := repo.FindPlayerByName(ctx, "ALICE")
			require.NoError(t, err)
			assert.Equal(t, alice.ID, found.ID)

			asa := mustPlayer(t, "Åsa Lind", nil)
			require.NoError(t, repo.SavePlayer(ctx, asa))
			found, err = repo.FindPlayerByName(ctx, " åsa LIND ")
			require.NoError(t, err)
			assert.Equal(t, asa.ID, found.ID)

			players, err := repo.ListPlayers(ctx)
			require.NoError(t, err)
			require.Len(t, players, 3)
			assert.Equal(t, "Alice", players[0].Name)
			assert.Equal(t, "bob", players[1].Name)
			assert.Equal(t, "Åsa Lind", players[2].Name)

			alice.Handicap = nil
			require.NoError(t, repo.SavePlayer(ctx, alice))
			got, err = repo.GetPlayer(ctx, alice.ID)
			require.NoError(t, err)
			assert.Nil(t, got.Handicap)
		})
	}
}

func TestRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)

			_, err := repo.GetPlayer(ctx, uuid.New())
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = repo.FindPlayerByName(ctx, "nobody")
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = repo.GetScorecard(ctx, uuid.New())
			assert.ErrorIs(t, err, ErrNotFound)

			cards, err := repo.ListScorecards(ctx)
			require.NoError(t, err)
			assert.Empty(t, cards)
		})
	}
}

func TestRepository_ScorecardRoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			player := mustPlayer(t, "Carol", nil)
			require.NoError(t, repo.SavePlayer(ctx, player))

			sc := mustCard(t, player.ID, "Pebble Beach", day(3), []int{4, 5, 0, 3})
			require.NoError(t, repo.SaveScorecard(ctx, sc))

			loaded, err := repo.GetScorecard(ctx, sc.RoundID())
			require.NoError(t, err)
			if diff := cmp.Diff(sc.Data(), loaded.Data()); diff != "" {
				t.Errorf("scorecard mismatch (-want +got):\n%s", diff)
			}
			assert.False(t, loaded.IsComplete())
			assert.Equal(t, 12, loaded.Total())

			require.NoError(t, loaded.RecordScore(3, 4))
			require.NoError(t, loaded.Complete())
			require.NoError(t, repo.SaveScorecard(ctx, loaded))

			reloaded, err := repo.GetScorecard(ctx, sc.RoundID())
			require.NoError(t, err)
			assert.True(t, reloaded.IsComplete())
			assert.Equal(t, 16, reloaded.Total())
			assert.ErrorIs(t, reloaded.RecordScore(1, 3), scorecardtypes.ErrRoundComplete)
		})
	}
}

func TestRepository_ListScorecards(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			a := mustPlayer(t, "A", nil)
			c := mustPlayer(t, "C", nil)
			require.NoError(t, repo.SavePlayer(ctx, a))
			require.NoError(t, repo.SavePlayer(ctx, c))

			late := mustCard(t, a.ID, "", day(20), []int{4, 4})
			early := mustCard(t, a.ID, "", day(2), []int{5, 5})
			other := mustCard(t, c.ID, "", day(10), []int{3, 3})
			for _, sc := range []*scorecardtypes.Scorecard{late, early, other} {
				require.NoError(t, repo.SaveScorecard(ctx, sc))
			}

			all, err := repo.ListScorecards(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, early.RoundID(), all[0].RoundID())
			assert.Equal(t, other.RoundID(), all[1].RoundID())
			assert.Equal(t, late.RoundID(), all[2].RoundID())

			mine, err := repo.ListScorecardsByPlayer(ctx, a.ID)
			require.NoError(t, err)
			require.Len(t, mine, 2)
			assert.Equal(t, early.RoundID(), mine[0].RoundID())
			assert.Equal(t, late.RoundID(), mine[1].RoundID())
		})
	}
}

func TestMemoryRepository_IsolatesSnapshots(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	sc := mustCard(t, uuid.New(), "", day(1), []int{4, 0})
	require.NoError(t, repo.SaveScorecard(ctx, sc))

	require.NoError(t, sc.RecordScore(2, 6))

	stored, err := repo.GetScorecard(ctx, sc.RoundID())
	require.NoError(t, err)
	_, recorded := stored.Strokes(2)
	assert.False(t, recorded)
}

func TestFileRepository_Layout(t *testing.T) {
	ctx := context.Background()
	base := filepath.Join(t.TempDir(), "golf")
	repo, err := NewFileRepository(base)
	require.NoError(t, err)
	assert.Equal(t, base, repo.Dir())

	p := mustPlayer(t, "Dana", nil)
	require.NoError(t, repo.SavePlayer(ctx, p))
	sc := mustCard(t, p.ID, "", day(5), []int{4})
	require.NoError(t, repo.SaveScorecard(ctx, sc))

	assert.FileExists(t, filepath.Join(base, "players", p.ID.String()+".json"))
	assert.FileExists(t, filepath.Join(base, "scorecards", sc.RoundID().String()+".json"))

	reopened, err := NewFileRepository(base)
	require.NoError(t, err)
	cards, err := reopened.ListScorecards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, sc.RoundID(), cards[0].RoundID())
}

func TestFileRepository_CorruptFile(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	repo, err := NewFileRepository(base)
	require.NoError(t, err)

	id := uuid.New()
	require.NoError(t, os.WriteFile(filepath.Join(base, "scorecards", id.String()+".json"), []byte("{not json"), 0o644))

	_, err = repo.GetScorecard(ctx, id)
	assert.ErrorIs(t, err, scorecardtypes.ErrPersistence)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = repo.ListScorecards(ctx)
	assert.ErrorIs(t, err, scorecardtypes.ErrPersistence)
}

func TestFileRepository_RejectsInvalidStoredCard(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	repo, err := NewFileRepository(base)
	require.NoError(t, err)

	id := uuid.New()
	raw := `{"round_id":"` + id.String() + `","player_id":"` + uuid.NewString() + `","course":"Standard","played_on":"2024-06-01T00:00:00Z","pars":[4,4],"strokes":[4,99],"completed":false}`
	require.NoError(t, os.WriteFile(filepath.Join(base, "scorecards", id.String()+".json"), []byte(raw), 0o644))

	_, err = repo.GetScorecard(ctx, id)
	assert.ErrorIs(t, err, scorecardtypes.ErrPersistence)
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	_, err := OpenDB("oracle", "whatever")
	assert.Error(t, err)
}

func TestSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := OpenDB(DriverSQLite, "file::memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, CreateSchema(ctx, db))
	require.NoError(t, CreateSchema(ctx, db))
	require.NoError(t, DropSchema(ctx, db))
	require.NoError(t, DropSchema(ctx, db))
}
