package scorecardtypes

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourPars(n int) []int {
	pars := make([]int, n)
	for i := range pars {
		pars[i] = 4
	}
	return pars
}

func newCard(t *testing.T, pars []int) *Scorecard {
	t.Helper()
	sc, err := NewScorecard(uuid.New(), NewRound("Test Links", time.Date(2026, 5, 2, 15, 30, 0, 0, time.UTC)), pars)
	require.NoError(t, err)
	return sc
}

func TestScorecard_RecordScore(t *testing.T) {
	tests := []struct {
		name    string
		hole    int
		strokes int
		wantErr error
	}{
		{name: "first hole", hole: 1, strokes: 4},
		{name: "last hole", hole: 18, strokes: 7},
		{name: "max strokes", hole: 9, strokes: MaxStrokes},
		{name: "hole zero", hole: 0, strokes: 4, wantErr: ErrOutOfRange},
		{name: "hole past course", hole: 19, strokes: 4, wantErr: ErrOutOfRange},
		{name: "zero strokes", hole: 3, strokes: 0, wantErr: ErrOutOfRange},
		{name: "negative strokes", hole: 3, strokes: -2, wantErr: ErrOutOfRange},
		{name: "too many strokes", hole: 3, strokes: MaxStrokes + 1, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := newCard(t, fourPars(18))
			err := sc.RecordScore(tt.hole, tt.strokes)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, sc.RecordedHoles())
				return
			}
			require.NoError(t, err)
			got, ok := sc.Strokes(tt.hole)
			require.True(t, ok)
			assert.Equal(t, tt.strokes, got)
		})
	}
}

func TestScorecard_RecordScoreReadBackEveryHole(t *testing.T) {
	sc := newCard(t, fourPars(18))
	for hole := 1; hole <= 18; hole++ {
		for strokes := MinStrokes; strokes <= MaxStrokes; strokes++ {
			require.NoError(t, sc.RecordScore(hole, strokes))
			got, ok := sc.Strokes(hole)
			require.True(t, ok)
			require.Equal(t, strokes, got, "hole %d", hole)
		}
	}
}

func TestScorecard_RecordScoreOverwrites(t *testing.T) {
	sc := newCard(t, fourPars(9))
	require.NoError(t, sc.RecordScore(2, 6))
	require.NoError(t, sc.RecordScore(2, 5))

	got, ok := sc.Strokes(2)
	require.True(t, ok)
	assert.Equal(t, 5, got)
	assert.Equal(t, 1, sc.RecordedHoles())
}

func TestScorecard_Total(t *testing.T) {
	sc := newCard(t, []int{4, 5, 3, 4, 4, 4, 3, 5, 4})
	for i, strokes := range []int{4, 5, 3, 4} {
		require.NoError(t, sc.RecordScore(i+1, strokes))
	}

	assert.Equal(t, 16, sc.Total())
	assert.False(t, sc.AllHolesRecorded())
}

func TestScorecard_ScoreVsPar(t *testing.T) {
	sc := newCard(t, []int{4, 5, 3, 4})
	for i, strokes := range []int{3, 5, 5, 4} {
		require.NoError(t, sc.RecordScore(i+1, strokes))
	}

	diffs, err := sc.ScoreVsPar([]int{4, 5, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 2, 0}, diffs)

	diffs, err = sc.ScoreVsPar([]int{4, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 1}, diffs)
}

func TestScorecard_ScoreVsParErrors(t *testing.T) {
	sc := newCard(t, []int{4, 5, 3, 4})
	require.NoError(t, sc.RecordScore(1, 4))
	require.NoError(t, sc.RecordScore(2, 5))
	require.NoError(t, sc.RecordScore(4, 4))

	_, err := sc.ScoreVsPar([]int{4, 5, 3, 4})
	require.ErrorIs(t, err, ErrIncompleteRound)

	_, err = sc.ScoreVsPar([]int{4, 5})
	require.NoError(t, err)

	_, err = sc.ScoreVsPar([]int{4, 5, 3, 4, 4})
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = sc.ScoreVsPar([]int{4, 7})
	require.ErrorIs(t, err, ErrInvalidPar)
}

func TestScorecard_CompleteLocksCard(t *testing.T) {
	sc := newCard(t, fourPars(3))
	require.NoError(t, sc.RecordScore(1, 4))

	err := sc.Complete()
	require.ErrorIs(t, err, ErrIncompleteRound)
	assert.False(t, sc.IsComplete())

	require.NoError(t, sc.RecordScore(2, 3))
	require.NoError(t, sc.RecordScore(3, 5))
	require.NoError(t, sc.Complete())
	require.NoError(t, sc.Complete(), "completing twice is a no-op")
	assert.True(t, sc.IsComplete())

	err = sc.RecordScore(1, 5)
	require.ErrorIs(t, err, ErrRoundComplete)

	toPar, err := sc.ToPar()
	require.NoError(t, err)
	assert.Equal(t, 0, toPar)
}

func TestNewScorecard_Validation(t *testing.T) {
	round := NewRound("", time.Time{})
	assert.Equal(t, DefaultCourse, round.Course)

	_, err := NewScorecard(uuid.Nil, round, fourPars(9))
	require.Error(t, err)

	_, err = NewScorecard(uuid.New(), round, nil)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewScorecard(uuid.New(), round, []int{4, 6, 4})
	require.ErrorIs(t, err, ErrInvalidPar)

	_, err = NewScorecard(uuid.New(), round, fourPars(MaxHoles+1))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestScorecard_DataRoundTrip(t *testing.T) {
	sc := newCard(t, []int{4, 3, 5})
	require.NoError(t, sc.RecordScore(1, 5))
	require.NoError(t, sc.RecordScore(3, 4))

	data := sc.Data()
	rebuilt, err := ScorecardFromData(data)
	require.NoError(t, err)
	if diff := cmp.Diff(data, rebuilt.Data()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Data returns copies; mutating them must not touch the card.
	data.Strokes[0] = 9
	got, _ := sc.Strokes(1)
	assert.Equal(t, 5, got)
}

func TestScorecardFromData_RejectsInvalid(t *testing.T) {
	valid := newCard(t, fourPars(2)).Data()

	tests := []struct {
		name   string
		mutate func(d *ScorecardData)
		want   error
	}{
		{name: "stroke count mismatch", mutate: func(d *ScorecardData) { d.Strokes = []int{4} }, want: ErrOutOfRange},
		{name: "bad strokes", mutate: func(d *ScorecardData) { d.Strokes = []int{4, 22} }, want: ErrOutOfRange},
		{name: "completed with gaps", mutate: func(d *ScorecardData) { d.Strokes = []int{4, 0}; d.Completed = true }, want: ErrIncompleteRound},
		{name: "bad par", mutate: func(d *ScorecardData) { d.Pars = []int{2, 4} }, want: ErrInvalidPar},
		{name: "missing round id", mutate: func(d *ScorecardData) { d.RoundID = uuid.Nil }, want: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			d.Pars = append([]int(nil), valid.Pars...)
			d.Strokes = append([]int(nil), valid.Strokes...)
			tt.mutate(&d)
			_, err := ScorecardFromData(d)
			require.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
