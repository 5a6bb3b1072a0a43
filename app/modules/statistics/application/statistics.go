// Package statsservice derives summary statistics from scorecards.
//
// Everything here is a pure function of its input: cards are filtered, mapped
// to per-round figures and folded into totals. Results do not depend on the
// order of the input slice.
package statsservice

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/google/uuid"
)

// Filter narrows a set of scorecards. Zero-valued fields match everything;
// From and To are inclusive.
type Filter struct {
	PlayerID uuid.UUID
	Course   string
	From     time.Time
	To       time.Time
}

// Matches reports whether sc passes the filter.
func (f Filter) Matches(sc *scorecardtypes.Scorecard) bool {
	if f.PlayerID != uuid.Nil && sc.PlayerID() != f.PlayerID {
		return false
	}
	round := sc.Round()
	if f.Course != "" && !strings.EqualFold(strings.TrimSpace(f.Course), round.Course) {
		return false
	}
	if !f.From.IsZero() && round.PlayedOn.Before(scorecardtypes.DateOf(f.From)) {
		return false
	}
	if !f.To.IsZero() && round.PlayedOn.After(scorecardtypes.DateOf(f.To)) {
		return false
	}
	return true
}

// Select returns the cards matching f.
func Select(cards []*scorecardtypes.Scorecard, f Filter) []*scorecardtypes.Scorecard {
	return filter(cards, f.Matches)
}

// RoundTotal is one completed round reduced to its totals.
type RoundTotal struct {
	RoundID  uuid.UUID
	PlayerID uuid.UUID
	Course   string
	PlayedOn time.Time
	Strokes  int
	ToPar    int
}

// HoleAverage aggregates one hole number across rounds.
type HoleAverage struct {
	Hole           int
	Rounds         int
	AverageStrokes float64
	AverageToPar   float64
}

// Summary is the aggregate view over a set of scorecards. Scoring figures only
// count rounds with every hole recorded; TotalRounds counts all of them.
type Summary struct {
	TotalRounds     int
	CompletedRounds int

	TotalStrokes   int
	AverageStrokes float64
	Best           RoundTotal
	Worst          RoundTotal

	TotalUnderPar int
	TotalOverPar  int

	Eagles       int
	Birdies      int
	Pars         int
	Bogeys       int
	DoubleBogeys int

	HoleAverages []HoleAverage
	BestHole     HoleAverage
	WorstHole    HoleAverage

	// Consistency is the population standard deviation of round scores relative to par.
	Consistency float64
}

// HasRounds reports whether any completed round contributed to the summary.
func (s Summary) HasRounds() bool { return s.CompletedRounds > 0 }

// Summarize computes the Summary for cards.
func Summarize(cards []*scorecardtypes.Scorecard) Summary {
	completed := filter(cards, fullyRecorded)
	rounds := mapSlice(completed, toRoundTotal)

	summary := Summary{
		TotalRounds:     len(cards),
		CompletedRounds: len(completed),
	}
	if len(rounds) == 0 {
		return summary
	}

	summary.TotalStrokes = fold(rounds, 0, func(acc int, r RoundTotal) int { return acc + r.Strokes })
	summary.AverageStrokes = float64(summary.TotalStrokes) / float64(len(rounds))
	summary.Best = slices.MinFunc(rounds, compareRounds)
	summary.Worst = slices.MaxFunc(rounds, func(a, b RoundTotal) int {
		// Highest total wins; ties still go to the earliest round.
		if c := cmp.Compare(a.Strokes, b.Strokes); c != 0 {
			return c
		}
		return -compareRoundIdentity(a, b)
	})

	summary.TotalUnderPar = fold(rounds, 0, func(acc int, r RoundTotal) int { return acc + min(r.ToPar, 0) })
	summary.TotalOverPar = fold(rounds, 0, func(acc int, r RoundTotal) int { return acc + max(r.ToPar, 0) })

	counts := fold(completed, map[scorecardtypes.HoleResult]int{}, countHoleResults)
	summary.Eagles = counts[scorecardtypes.EagleOrBetter]
	summary.Birdies = counts[scorecardtypes.Birdie]
	summary.Pars = counts[scorecardtypes.Par]
	summary.Bogeys = counts[scorecardtypes.Bogey]
	summary.DoubleBogeys = counts[scorecardtypes.DoubleBogeyOrWorse]

	summary.HoleAverages = HoleAverages(completed)
	if len(summary.HoleAverages) > 0 {
		byToPar := func(a, b HoleAverage) int {
			if c := cmp.Compare(a.AverageToPar, b.AverageToPar); c != 0 {
				return c
			}
			return cmp.Compare(a.Hole, b.Hole)
		}
		summary.BestHole = slices.MinFunc(summary.HoleAverages, byToPar)
		summary.WorstHole = slices.MaxFunc(summary.HoleAverages, func(a, b HoleAverage) int {
			if c := cmp.Compare(a.AverageToPar, b.AverageToPar); c != 0 {
				return c
			}
			return cmp.Compare(b.Hole, a.Hole)
		})
	}

	summary.Consistency = standardDeviation(mapSlice(rounds, func(r RoundTotal) int { return r.ToPar }))
	return summary
}

// RoundTotals reduces the completed cards to per-round totals ordered by date.
func RoundTotals(cards []*scorecardtypes.Scorecard) []RoundTotal {
	rounds := mapSlice(filter(cards, fullyRecorded), toRoundTotal)
	slices.SortFunc(rounds, compareRoundIdentity)
	return rounds
}

// Totals returns the stroke totals of the completed cards ordered by date.
func Totals(cards []*scorecardtypes.Scorecard) []int {
	return mapSlice(RoundTotals(cards), func(r RoundTotal) int { return r.Strokes })
}

// HoleAverages averages each hole number over the completed cards that have it.
func HoleAverages(cards []*scorecardtypes.Scorecard) []HoleAverage {
	type acc struct{ rounds, strokes, toPar int }

	sums := fold(filter(cards, fullyRecorded), map[int]acc{}, func(m map[int]acc, sc *scorecardtypes.Scorecard) map[int]acc {
		for hole := 1; hole <= sc.HoleCount(); hole++ {
			strokes, _ := sc.Strokes(hole)
			par, _ := sc.Par(hole)
			a := m[hole]
			a.rounds++
			a.strokes += strokes
			a.toPar += strokes - par
			m[hole] = a
		}
		return m
	})

	out := make([]HoleAverage, 0, len(sums))
	for hole, a := range sums {
		out = append(out, HoleAverage{
			Hole:           hole,
			Rounds:         a.rounds,
			AverageStrokes: float64(a.strokes) / float64(a.rounds),
			AverageToPar:   float64(a.toPar) / float64(a.rounds),
		})
	}
	slices.SortFunc(out, func(a, b HoleAverage) int { return cmp.Compare(a.Hole, b.Hole) })
	return out
}

// RequireComplete fails with ErrIncompleteRound when any card has unrecorded holes.
func RequireComplete(cards []*scorecardtypes.Scorecard) error {
	for _, sc := range cards {
		if !sc.AllHolesRecorded() {
			return fmt.Errorf("%w: round %s has %d of %d holes recorded",
				scorecardtypes.ErrIncompleteRound, sc.RoundID(), sc.RecordedHoles(), sc.HoleCount())
		}
	}
	return nil
}

func fullyRecorded(sc *scorecardtypes.Scorecard) bool { return sc.AllHolesRecorded() }

func toRoundTotal(sc *scorecardtypes.Scorecard) RoundTotal {
	round := sc.Round()
	return RoundTotal{
		RoundID:  round.ID,
		PlayerID: sc.PlayerID(),
		Course:   round.Course,
		PlayedOn: round.PlayedOn,
		Strokes:  sc.Total(),
		ToPar:    sc.Total() - sc.TotalPar(),
	}
}

func countHoleResults(m map[scorecardtypes.HoleResult]int, sc *scorecardtypes.Scorecard) map[scorecardtypes.HoleResult]int {
	for hole := 1; hole <= sc.HoleCount(); hole++ {
		strokes, ok := sc.Strokes(hole)
		if !ok {
			continue
		}
		par, _ := sc.Par(hole)
		m[scorecardtypes.ClassifyHole(strokes, par)]++
	}
	return m
}

func compareRounds(a, b RoundTotal) int {
	if c := cmp.Compare(a.Strokes, b.Strokes); c != 0 {
		return c
	}
	return compareRoundIdentity(a, b)
}

func compareRoundIdentity(a, b RoundTotal) int {
	if c := a.PlayedOn.Compare(b.PlayedOn); c != 0 {
		return c
	}
	return strings.Compare(a.RoundID.String(), b.RoundID.String())
}

func standardDeviation(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := fold(values, 0, func(acc, v int) int { return acc + v })
	sumSq := fold(values, 0, func(acc, v int) int { return acc + v*v })
	n := float64(len(values))
	mean := float64(sum) / n
	variance := float64(sumSq)/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}
