package roundtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday afternoon.
var now = time.Date(2024, time.June, 12, 15, 30, 0, 0, time.UTC)

func TestDateParser_Parse(t *testing.T) {
	parser := NewDateParser()
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "empty means today", input: "", want: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
		{name: "whitespace means today", input: "   ", want: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
		{name: "iso date", input: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "iso today", input: "2024-06-12", want: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
		{name: "today", input: "today", want: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
		{name: "yesterday", input: "Yesterday", want: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)},
		{name: "future iso date", input: "2024-06-13", wantErr: ErrFutureDate},
		{name: "tomorrow", input: "tomorrow", wantErr: ErrFutureDate},
		{name: "gibberish", input: "fortnightish", wantErr: ErrUnrecognisedDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDateParser_LastWeekday(t *testing.T) {
	got, err := NewDateParser().Parse("last saturday", now)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, got.Weekday())
	assert.True(t, got.Before(now))
	assert.Equal(t, 0, got.Hour())
}
