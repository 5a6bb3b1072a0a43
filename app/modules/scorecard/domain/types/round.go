package scorecardtypes

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCourse names rounds created without a course.
const DefaultCourse = "Standard"

// Round is the metadata of one play-through of a course.
type Round struct {
	ID       uuid.UUID `json:"id"`
	Course   string    `json:"course"`
	PlayedOn time.Time `json:"played_on"`
}

// NewRound creates round metadata with a fresh ID. PlayedOn is reduced to its
// UTC calendar date.
func NewRound(course string, playedOn time.Time) Round {
	course = strings.TrimSpace(course)
	if course == "" {
		course = DefaultCourse
	}
	if playedOn.IsZero() {
		playedOn = time.Now()
	}
	return Round{
		ID:       uuid.New(),
		Course:   course,
		PlayedOn: DateOf(playedOn),
	}
}

// DateOf truncates t to midnight UTC of its calendar date in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
