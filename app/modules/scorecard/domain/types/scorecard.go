package scorecardtypes

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Scorecard is one player's per-hole stroke record for one round.
//
// Holes are numbered 1..HoleCount. A hole with no recorded score holds zero
// internally. Round metadata and pars never change after creation; strokes
// change only until Complete is called.
type Scorecard struct {
	round     Round
	playerID  uuid.UUID
	pars      []int
	strokes   []int
	completed bool
}

// ScorecardData is the flat, persistable form of a Scorecard. Strokes holds
// zero for unrecorded holes.
type ScorecardData struct {
	RoundID   uuid.UUID `json:"round_id"`
	PlayerID  uuid.UUID `json:"player_id"`
	Course    string    `json:"course"`
	PlayedOn  time.Time `json:"played_on"`
	Pars      []int     `json:"pars"`
	Strokes   []int     `json:"strokes"`
	Completed bool      `json:"completed"`
}

// NewScorecard starts an empty scorecard for playerID on round with the given
// per-hole pars.
func NewScorecard(playerID uuid.UUID, round Round, pars []int) (*Scorecard, error) {
	if playerID == uuid.Nil {
		return nil, fmt.Errorf("%w: scorecard requires a player", ErrNotFound)
	}
	if err := ValidatePars(pars); err != nil {
		return nil, err
	}
	return &Scorecard{
		round:    round,
		playerID: playerID,
		pars:     slices.Clone(pars),
		strokes:  make([]int, len(pars)),
	}, nil
}

// ScorecardFromData rebuilds a Scorecard, re-checking every invariant.
func ScorecardFromData(d ScorecardData) (*Scorecard, error) {
	if d.RoundID == uuid.Nil {
		return nil, fmt.Errorf("%w: scorecard data has no round id", ErrOutOfRange)
	}
	sc, err := NewScorecard(d.PlayerID, Round{ID: d.RoundID, Course: d.Course, PlayedOn: d.PlayedOn}, d.Pars)
	if err != nil {
		return nil, err
	}
	if len(d.Strokes) != len(d.Pars) {
		return nil, fmt.Errorf("%w: %d stroke entries for %d holes", ErrOutOfRange, len(d.Strokes), len(d.Pars))
	}
	for i, strokes := range d.Strokes {
		if strokes == 0 {
			continue
		}
		if err := validateStrokes(strokes, i+1); err != nil {
			return nil, err
		}
		sc.strokes[i] = strokes
	}
	if d.Completed {
		if err := sc.Complete(); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// Data returns a copy of the scorecard in its persistable form.
func (s *Scorecard) Data() ScorecardData {
	return ScorecardData{
		RoundID:   s.round.ID,
		PlayerID:  s.playerID,
		Course:    s.round.Course,
		PlayedOn:  s.round.PlayedOn,
		Pars:      slices.Clone(s.pars),
		Strokes:   slices.Clone(s.strokes),
		Completed: s.completed,
	}
}

func (s *Scorecard) Round() Round        { return s.round }
func (s *Scorecard) RoundID() uuid.UUID  { return s.round.ID }
func (s *Scorecard) PlayerID() uuid.UUID { return s.playerID }
func (s *Scorecard) HoleCount() int      { return len(s.pars) }
func (s *Scorecard) Pars() []int         { return slices.Clone(s.pars) }
func (s *Scorecard) IsComplete() bool    { return s.completed }

// Par returns the par of hole, or false when hole is outside the course.
func (s *Scorecard) Par(hole int) (int, bool) {
	if hole < 1 || hole > len(s.pars) {
		return 0, false
	}
	return s.pars[hole-1], true
}

// RecordScore stores strokes for hole, replacing any earlier entry.
func (s *Scorecard) RecordScore(hole, strokes int) error {
	if s.completed {
		return fmt.Errorf("%w: round %s", ErrRoundComplete, s.round.ID)
	}
	if err := validateHoleNumber(hole, len(s.pars)); err != nil {
		return err
	}
	if err := validateStrokes(strokes, hole); err != nil {
		return err
	}
	s.strokes[hole-1] = strokes
	return nil
}

// Strokes returns the recorded strokes for hole and whether one was recorded.
func (s *Scorecard) Strokes(hole int) (int, bool) {
	if hole < 1 || hole > len(s.strokes) {
		return 0, false
	}
	v := s.strokes[hole-1]
	return v, v > 0
}

// RecordedHoles counts holes with a recorded score.
func (s *Scorecard) RecordedHoles() int {
	n := 0
	for _, v := range s.strokes {
		if v > 0 {
			n++
		}
	}
	return n
}

func (s *Scorecard) AllHolesRecorded() bool {
	return s.RecordedHoles() == len(s.strokes)
}

// Total sums the recorded strokes; unrecorded holes contribute nothing.
func (s *Scorecard) Total() int {
	total := 0
	for _, v := range s.strokes {
		total += v
	}
	return total
}

// TotalPar sums the par of every hole on the card.
func (s *Scorecard) TotalPar() int {
	total := 0
	for _, p := range s.pars {
		total += p
	}
	return total
}

// ScoreVsPar returns strokes minus par for holes 1..len(pars).
func (s *Scorecard) ScoreVsPar(pars []int) ([]int, error) {
	if len(pars) > len(s.strokes) {
		return nil, fmt.Errorf("%w: %d pars for a %d hole card", ErrOutOfRange, len(pars), len(s.strokes))
	}
	diffs := make([]int, len(pars))
	for i, par := range pars {
		if err := validatePar(par, i+1); err != nil {
			return nil, err
		}
		strokes := s.strokes[i]
		if strokes == 0 {
			return nil, fmt.Errorf("%w: hole %d has no score", ErrIncompleteRound, i+1)
		}
		diffs[i] = strokes - par
	}
	return diffs, nil
}

// ToPar returns the round total relative to the card's own pars.
func (s *Scorecard) ToPar() (int, error) {
	if !s.AllHolesRecorded() {
		return 0, fmt.Errorf("%w: %d of %d holes recorded", ErrIncompleteRound, s.RecordedHoles(), len(s.strokes))
	}
	return s.Total() - s.TotalPar(), nil
}

// Complete marks the round finished. The scorecard is read-only afterwards.
func (s *Scorecard) Complete() error {
	if s.completed {
		return nil
	}
	if !s.AllHolesRecorded() {
		return fmt.Errorf("%w: %d of %d holes recorded", ErrIncompleteRound, s.RecordedHoles(), len(s.strokes))
	}
	s.completed = true
	return nil
}
