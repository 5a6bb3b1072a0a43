package scorecarddb

import (
	"time"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Player is the players table row. IDs are stored as text so the same models
// work on sqlite and postgres. NameKey carries the uniqueness constraint
// because sqlite's LOWER only folds ASCII.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID        string    `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	NameKey   string    `bun:"name_key,notnull,unique"`
	Handicap  *float64  `bun:"handicap"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// Scorecard is the scorecards table row. Pars and Strokes are JSON encoded.
type Scorecard struct {
	bun.BaseModel `bun:"table:scorecards,alias:sc"`

	RoundID   string    `bun:"round_id,pk"`
	PlayerID  string    `bun:"player_id,notnull"`
	Course    string    `bun:"course,notnull"`
	PlayedOn  time.Time `bun:"played_on,notnull"`
	Pars      []int     `bun:"pars,notnull"`
	Strokes   []int     `bun:"strokes,notnull"`
	Completed bool      `bun:"completed,notnull"`
}

func playerToModel(p scorecardtypes.Player) *Player {
	return &Player{
		ID:        p.ID.String(),
		Name:      p.Name,
		NameKey:   scorecardtypes.NameKey(p.Name),
		Handicap:  p.Handicap,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func playerFromModel(m *Player) (scorecardtypes.Player, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return scorecardtypes.Player{}, persistenceError("decode player id", err)
	}
	return scorecardtypes.Player{
		ID:        id,
		Name:      m.Name,
		Handicap:  m.Handicap,
		CreatedAt: m.CreatedAt.UTC(),
	}, nil
}

func scorecardToModel(sc *scorecardtypes.Scorecard) *Scorecard {
	d := sc.Data()
	return &Scorecard{
		RoundID:   d.RoundID.String(),
		PlayerID:  d.PlayerID.String(),
		Course:    d.Course,
		PlayedOn:  d.PlayedOn.UTC(),
		Pars:      d.Pars,
		Strokes:   d.Strokes,
		Completed: d.Completed,
	}
}

func scorecardFromModel(m *Scorecard) (*scorecardtypes.Scorecard, error) {
	roundID, err := uuid.Parse(m.RoundID)
	if err != nil {
		return nil, persistenceError("decode round id", err)
	}
	playerID, err := uuid.Parse(m.PlayerID)
	if err != nil {
		return nil, persistenceError("decode player id", err)
	}
	sc, err := scorecardtypes.ScorecardFromData(scorecardtypes.ScorecardData{
		RoundID:   roundID,
		PlayerID:  playerID,
		Course:    m.Course,
		PlayedOn:  m.PlayedOn.UTC(),
		Pars:      m.Pars,
		Strokes:   m.Strokes,
		Completed: m.Completed,
	})
	if err != nil {
		return nil, persistenceError("decode scorecard "+m.RoundID, err)
	}
	return sc, nil
}
