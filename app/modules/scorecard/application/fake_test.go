package scorecardservice

import (
	"context"
	"time"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	scorecarddb "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/repositories"
	"github.com/google/uuid"
)

// ------------------------
// Fake Scorecard Repo
// ------------------------

// FakeRepository records calls and delegates to an in-memory store unless the
// matching Func field is set.
type FakeRepository struct {
	trace []string
	store *scorecarddb.MemoryRepository

	SavePlayerFunc       func(ctx context.Context, player scorecardtypes.Player) error
	GetPlayerFunc        func(ctx context.Context, id uuid.UUID) (scorecardtypes.Player, error)
	FindPlayerByNameFunc func(ctx context.Context, name string) (scorecardtypes.Player, error)
	SaveScorecardFunc    func(ctx context.Context, sc *scorecardtypes.Scorecard) error
	GetScorecardFunc     func(ctx context.Context, roundID uuid.UUID) (*scorecardtypes.Scorecard, error)
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		trace: []string{},
		store: scorecarddb.NewMemoryRepository(),
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRepository) SavePlayer(ctx context.Context, player scorecardtypes.Player) error {
	f.record("SavePlayer")
	if f.SavePlayerFunc != nil {
		return f.SavePlayerFunc(ctx, player)
	}
	return f.store.SavePlayer(ctx, player)
}

func (f *FakeRepository) GetPlayer(ctx context.Context, id uuid.UUID) (scorecardtypes.Player, error) {
	f.record("GetPlayer")
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, id)
	}
	return f.store.GetPlayer(ctx, id)
}

func (f *FakeRepository) FindPlayerByName(ctx context.Context, name string) (scorecardtypes.Player, error) {
	f.record("FindPlayerByName")
	if f.FindPlayerByNameFunc != nil {
		return f.FindPlayerByNameFunc(ctx, name)
	}
	return f.store.FindPlayerByName(ctx, name)
}

func (f *FakeRepository) ListPlayers(ctx context.Context) ([]scorecardtypes.Player, error) {
	f.record("ListPlayers")
	return f.store.ListPlayers(ctx)
}

func (f *FakeRepository) SaveScorecard(ctx context.Context, sc *scorecardtypes.Scorecard) error {
	f.record("SaveScorecard")
	if f.SaveScorecardFunc != nil {
		return f.SaveScorecardFunc(ctx, sc)
	}
	return f.store.SaveScorecard(ctx, sc)
}

func (f *FakeRepository) GetScorecard(ctx context.Context, roundID uuid.UUID) (*scorecardtypes.Scorecard, error) {
	f.record("GetScorecard")
	if f.GetScorecardFunc != nil {
		return f.GetScorecardFunc(ctx, roundID)
	}
	return f.store.GetScorecard(ctx, roundID)
}

func (f *FakeRepository) ListScorecards(ctx context.Context) ([]*scorecardtypes.Scorecard, error) {
	f.record("ListScorecards")
	return f.store.ListScorecards(ctx)
}

func (f *FakeRepository) ListScorecardsByPlayer(ctx context.Context, playerID uuid.UUID) ([]*scorecardtypes.Scorecard, error) {
	f.record("ListScorecardsByPlayer")
	return f.store.ListScorecardsByPlayer(ctx, playerID)
}

var _ scorecarddb.Repository = (*FakeRepository)(nil)

// ------------------------
// Fake Metrics
// ------------------------

type FakeMetrics struct {
	Failures        map[string]int
	Successes       map[string]int
	HoleScores      []scorecardtypes.HoleResult
	CompletedRounds []string
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{Failures: map[string]int{}, Successes: map[string]int{}}
}

func (m *FakeMetrics) RecordOperationAttempt(context.Context, string) {}
func (m *FakeMetrics) RecordOperationSuccess(_ context.Context, op string) {
	m.Successes[op]++
}
func (m *FakeMetrics) RecordOperationFailure(_ context.Context, op string) {
	m.Failures[op]++
}
func (m *FakeMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (m *FakeMetrics) RecordHoleScore(_ context.Context, result scorecardtypes.HoleResult) {
	m.HoleScores = append(m.HoleScores, result)
}
func (m *FakeMetrics) RecordRoundCompleted(_ context.Context, course string, _, _ int) {
	m.CompletedRounds = append(m.CompletedRounds, course)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
