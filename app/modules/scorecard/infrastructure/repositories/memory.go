package scorecarddb

import (
	"context"
	"fmt"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/google/uuid"
)

// MemoryRepository keeps players and scorecards in process memory, keyed by
// ID. Stored scorecards are snapshots, so callers never share state with the
// repository. It is not safe for concurrent use.
type MemoryRepository struct {
	players    map[uuid.UUID]scorecardtypes.Player
	scorecards map[uuid.UUID]scorecardtypes.ScorecardData
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		players:    make(map[uuid.UUID]scorecardtypes.Player),
		scorecards: make(map[uuid.UUID]scorecardtypes.ScorecardData),
	}
}

func (r *MemoryRepository) SavePlayer(_ context.Context, player scorecardtypes.Player) error {
	r.players[player.ID] = player
	return nil
}

func (r *MemoryRepository) GetPlayer(_ context.Context, id uuid.UUID) (scorecardtypes.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return scorecardtypes.Player{}, fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (r *MemoryRepository) FindPlayerByName(_ context.Context, name string) (scorecardtypes.Player, error) {
	for _, p := range r.players {
		if scorecardtypes.SameName(p.Name, name) {
			return p, nil
		}
	}
	return scorecardtypes.Player{}, fmt.Errorf("player %q: %w", name, ErrNotFound)
}

func (r *MemoryRepository) ListPlayers(_ context.Context) ([]scorecardtypes.Player, error) {
	players := make([]scorecardtypes.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	sortPlayers(players)
	return players, nil
}

func (r *MemoryRepository) SaveScorecard(_ context.Context, scorecard *scorecardtypes.Scorecard) error {
	r.scorecards[scorecard.RoundID()] = scorecard.Data()
	return nil
}

func (r *MemoryRepository) GetScorecard(_ context.Context, roundID uuid.UUID) (*scorecardtypes.Scorecard, error) {
	d, ok := r.scorecards[roundID]
	if !ok {
		return nil, fmt.Errorf("scorecard %s: %w", roundID, ErrNotFound)
	}
	return scorecardtypes.ScorecardFromData(d)
}

func (r *MemoryRepository) ListScorecards(ctx context.Context) ([]*scorecardtypes.Scorecard, error) {
	return r.list(func(scorecardtypes.ScorecardData) bool { return true })
}

func (r *MemoryRepository) ListScorecardsByPlayer(ctx context.Context, playerID uuid.UUID) ([]*scorecardtypes.Scorecard, error) {
	return r.list(func(d scorecardtypes.ScorecardData) bool { return d.PlayerID == playerID })
}

func (r *MemoryRepository) list(keep func(scorecardtypes.ScorecardData) bool) ([]*scorecardtypes.Scorecard, error) {
	cards := make([]*scorecardtypes.Scorecard, 0, len(r.scorecards))
	for _, d := range r.scorecards {
		if !keep(d) {
			continue
		}
		sc, err := scorecardtypes.ScorecardFromData(d)
		if err != nil {
			return nil, err
		}
		cards = append(cards, sc)
	}
	sortScorecards(cards)
	return cards, nil
}

var _ Repository = (*MemoryRepository)(nil)
