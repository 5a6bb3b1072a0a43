package scorecardservice

import (
	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	statsservice "github.com/Black-And-White-Club/golf-tracker/app/modules/statistics/application"
)

// StartRoundRequest describes a new round for one player. Explicit Pars win
// over Course; otherwise the course catalog supplies them, falling back to a
// standard layout of Holes holes. A non-zero Holes that disagrees with explicit
// Pars or a catalog layout is rejected. Date accepts anything the date parser
// does.
type StartRoundRequest struct {
	Player string
	Course string
	Pars   []int
	Holes  int
	Date   string
}

// ScorecardView is a scorecard with its player and derived totals.
type ScorecardView struct {
	Player        scorecardtypes.Player
	Card          scorecardtypes.ScorecardData
	RecordedHoles int
	Total         int
	TotalPar      int
	// ToPar is set once every hole is recorded.
	ToPar *int
}

// StatisticsRequest selects a player's rounds for PlayerStatistics. Strict
// fails with ErrIncompleteRound when any selected round has unrecorded holes
// instead of leaving those rounds out of the scoring figures.
type StatisticsRequest struct {
	Player string
	Filter statsservice.Filter
	Strict bool
}

type PlayerStatistics struct {
	Player  scorecardtypes.Player
	Summary statsservice.Summary
}

// ImportRequest carries a CSV or XLSX grid. Unknown player names fail the
// import unless CreatePlayers is set.
type ImportRequest struct {
	FileName      string
	Data          []byte
	Course        string
	Date          string
	CreatePlayers bool
}

type ImportSummary struct {
	Scorecards     []ScorecardView
	CreatedPlayers []scorecardtypes.Player
}

type ExportedFile struct {
	FileName string
	Data     []byte
}

func newView(player scorecardtypes.Player, sc *scorecardtypes.Scorecard) ScorecardView {
	v := ScorecardView{
		Player:        player,
		Card:          sc.Data(),
		RecordedHoles: sc.RecordedHoles(),
		Total:         sc.Total(),
		TotalPar:      sc.TotalPar(),
	}
	if toPar, err := sc.ToPar(); err == nil {
		v.ToPar = &toPar
	}
	return v
}
