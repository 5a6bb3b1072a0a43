package parsers

import "errors"

// ErrInvalidFormat is wrapped by every parse failure caused by file content.
var ErrInvalidFormat = errors.New("invalid scorecard file")

// Parser reads a scorecard grid from raw file bytes.
type Parser interface {
	Parse(fileData []byte) (*ParsedScorecard, error)
}

// Writer renders a scorecard grid in a format its matching Parser reads back.
type Writer interface {
	Write(sheet *ParsedScorecard) ([]byte, error)
	Extension() string
}

// ParsedScorecard is one grid: a par row plus one row of strokes per player.
// Pars is nil when the file has no par row.
type ParsedScorecard struct {
	Pars    []int
	Players []PlayerScores
}

// PlayerScores holds one player's strokes by hole. 0 means not recorded.
type PlayerScores struct {
	Name    string
	Strokes []int
}

// HoleCount is the number of hole columns in the grid.
func (p *ParsedScorecard) HoleCount() int {
	if len(p.Pars) > 0 {
		return len(p.Pars)
	}
	if len(p.Players) > 0 {
		return len(p.Players[0].Strokes)
	}
	return 0
}
