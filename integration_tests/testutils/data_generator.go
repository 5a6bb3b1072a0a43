package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/courses"
	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// GeneratePlayers creates count players with distinct names. Roughly half
// carry a handicap.
func (g *TestDataGenerator) GeneratePlayers(count int) []scorecardtypes.Player {
	players := make([]scorecardtypes.Player, 0, count)
	seen := make(map[string]bool)
	for len(players) < count {
		name := g.faker.FirstName() + " " + g.faker.LastName()
		if seen[name] {
			continue
		}
		seen[name] = true

		var handicap *float64
		if g.faker.Bool() {
			h := float64(int(g.faker.Float64Range(0, 36)*10)) / 10
			handicap = &h
		}
		p, err := scorecardtypes.NewPlayer(name, handicap)
		if err != nil {
			panic(err)
		}
		players = append(players, p)
	}
	return players
}

// ScorecardOptions constrains GenerateScorecard.
type ScorecardOptions struct {
	Course   string
	PlayedOn time.Time
	// Recorded is the number of leading holes to fill; -1 fills every hole.
	Recorded int
	Complete bool
}

// GenerateScorecard creates a scorecard for playerID on a catalog course.
func (g *TestDataGenerator) GenerateScorecard(playerID uuid.UUID, opts ScorecardOptions) *scorecardtypes.Scorecard {
	if opts.Course == "" {
		opts.Course = g.faker.RandomString(courses.Names())
	}
	if opts.PlayedOn.IsZero() {
		opts.PlayedOn = g.faker.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
	}
	layout := courses.Lookup(opts.Course, 0)

	sc, err := scorecardtypes.NewScorecard(playerID, scorecardtypes.NewRound(layout.Name, opts.PlayedOn), layout.Pars)
	if err != nil {
		panic(err)
	}
	recorded := opts.Recorded
	if recorded < 0 || recorded > len(layout.Pars) {
		recorded = len(layout.Pars)
	}
	for hole := 1; hole <= recorded; hole++ {
		par := layout.Pars[hole-1]
		if err := sc.RecordScore(hole, g.faker.Number(max(1, par-2), par+3)); err != nil {
			panic(err)
		}
	}
	if opts.Complete {
		if err := sc.Complete(); err != nil {
			panic(err)
		}
	}
	return sc
}
