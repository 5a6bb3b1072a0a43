package demo

import (
	"math"
	"time"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces plausible players and hole-by-hole scores. The same seed
// always yields the same data.
type Generator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewGenerator creates a generator with an optional seed; without one the
// current time is used.
func NewGenerator(seed ...int64) *Generator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &Generator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

func (g *Generator) Seed() int64 { return g.seed }

func (g *Generator) PlayerName() string {
	return g.faker.FirstName() + " " + g.faker.LastName()
}

// Handicap returns a handicap between 0 and 30 rounded to one decimal.
func (g *Generator) Handicap() float64 {
	return math.Round(g.faker.Float64Range(0, 30)*10) / 10
}

// Pick returns one of options.
func (g *Generator) Pick(options []string) string {
	return g.faker.RandomString(options)
}

// Strokes plays one round: each hole lands near par, drifting higher as the
// handicap grows. Results stay within the valid stroke range.
func (g *Generator) Strokes(pars []int, handicap float64) []int {
	strokes := make([]int, len(pars))
	h := int(handicap)
	for i, par := range pars {
		roll := g.faker.Number(0, 99)
		var offset int
		switch {
		case roll < 2:
			offset = -2
		case roll < 12-h/5:
			offset = -1
		case roll < 60-h:
			offset = 0
		case roll < 92-h/3:
			offset = 1
		default:
			offset = 2 + g.faker.Number(0, 1)
		}
		strokes[i] = min(max(par+offset, scorecardtypes.MinStrokes), scorecardtypes.MaxStrokes)
	}
	return strokes
}
