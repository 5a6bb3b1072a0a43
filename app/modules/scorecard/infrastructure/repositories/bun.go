package scorecarddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository persists players and scorecards through bun. The same code
// serves the sqlite and postgres dialects.
type BunRepository struct {
	DB bun.IDB
}

func NewBunRepository(db bun.IDB) *BunRepository {
	return &BunRepository{DB: db}
}

func (r *BunRepository) SavePlayer(ctx context.Context, player scorecardtypes.Player) error {
	_, err := r.DB.NewInsert().
		Model(playerToModel(player)).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("name_key = EXCLUDED.name_key").
		Set("handicap = EXCLUDED.handicap").
		Exec(ctx)
	if err != nil {
		return persistenceError(fmt.Sprintf("save player %s", player.ID), err)
	}
	return nil
}

func (r *BunRepository) GetPlayer(ctx context.Context, id uuid.UUID) (scorecardtypes.Player, error) {
	var m Player
	err := r.DB.NewSelect().
		Model(&m).
		Where("id = ?", id.String()).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scorecardtypes.Player{}, fmt.Errorf("player %s: %w", id, ErrNotFound)
		}
		return scorecardtypes.Player{}, persistenceError(fmt.Sprintf("get player %s", id), err)
	}
	return playerFromModel(&m)
}

func (r *BunRepository) FindPlayerByName(ctx context.Context, name string) (scorecardtypes.Player, error) {
	var m Player
	err := r.DB.NewSelect().
		Model(&m).
		Where("name_key = ?", scorecardtypes.NameKey(name)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scorecardtypes.Player{}, fmt.Errorf("player %q: %w", name, ErrNotFound)
		}
		return scorecardtypes.Player{}, persistenceError(fmt.Sprintf("find player %q", name), err)
	}
	return playerFromModel(&m)
}

func (r *BunRepository) ListPlayers(ctx context.Context) ([]scorecardtypes.Player, error) {
	var models []Player
	if err := r.DB.NewSelect().Model(&models).Scan(ctx); err != nil {
		return nil, persistenceError("list players", err)
	}
	players := make([]scorecardtypes.Player, 0, len(models))
	for i := range models {
		p, err := playerFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	sortPlayers(players)
	return players, nil
}

// SaveScorecard inserts the card or updates its strokes and completion. Round
// metadata and pars are written once.
func (r *BunRepository) SaveScorecard(ctx context.Context, scorecard *scorecardtypes.Scorecard) error {
	_, err := r.DB.NewInsert().
		Model(scorecardToModel(scorecard)).
		On("CONFLICT (round_id) DO UPDATE").
		Set("strokes = EXCLUDED.strokes").
		Set("completed = EXCLUDED.completed").
		Exec(ctx)
	if err != nil {
		return persistenceError(fmt.Sprintf("save scorecard %s", scorecard.RoundID()), err)
	}
	return nil
}

func (r *BunRepository) GetScorecard(ctx context.Context, roundID uuid.UUID) (*scorecardtypes.Scorecard, error) {
	var m Scorecard
	err := r.DB.NewSelect().
		Model(&m).
		Where("round_id = ?", roundID.String()).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("scorecard %s: %w", roundID, ErrNotFound)
		}
		return nil, persistenceError(fmt.Sprintf("get scorecard %s", roundID), err)
	}
	return scorecardFromModel(&m)
}

func (r *BunRepository) ListScorecards(ctx context.Context) ([]*scorecardtypes.Scorecard, error) {
	return r.listScorecards(ctx, func(q *bun.SelectQuery) *bun.SelectQuery { return q })
}

func (r *BunRepository) ListScorecardsByPlayer(ctx context.Context, playerID uuid.UUID) ([]*scorecardtypes.Scorecard, error) {
	return r.listScorecards(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("player_id = ?", playerID.String())
	})
}

func (r *BunRepository) listScorecards(ctx context.Context, scope func(*bun.SelectQuery) *bun.SelectQuery) ([]*scorecardtypes.Scorecard, error) {
	var models []Scorecard
	q := scope(r.DB.NewSelect().Model(&models))
	if err := q.Scan(ctx); err != nil {
		return nil, persistenceError("list scorecards", err)
	}
	cards := make([]*scorecardtypes.Scorecard, 0, len(models))
	for i := range models {
		sc, err := scorecardFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		cards = append(cards, sc)
	}
	sortScorecards(cards)
	return cards, nil
}

var _ Repository = (*BunRepository)(nil)
