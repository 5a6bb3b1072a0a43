package scorecardtypes

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Player is a named golfer. Scorecards reference players by ID.
type Player struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Handicap  *float64  `json:"handicap,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPlayer validates the name and optional handicap and assigns a fresh ID.
func NewPlayer(name string, handicap *float64) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrEmptyName
	}
	if err := validateHandicap(handicap); err != nil {
		return Player{}, err
	}
	return Player{
		ID:        uuid.New(),
		Name:      name,
		Handicap:  handicap,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}, nil
}

// NameKey is the normalized form players are matched by: trimmed and
// lowercased with Unicode case mapping.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName reports whether two player names refer to the same golfer.
func SameName(a, b string) bool {
	return NameKey(a) == NameKey(b)
}
