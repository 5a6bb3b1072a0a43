package roundtime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const isoDate = "2006-01-02"

var (
	ErrUnrecognisedDate = errors.New("could not recognise date")
	ErrFutureDate       = errors.New("round date is in the future")
)

// DateParserInterface resolves user input to the calendar date a round was
// played on.
type DateParserInterface interface {
	Parse(input string, now time.Time) (time.Time, error)
}

// DateParser accepts ISO dates, dd/mm/yyyy, and English phrases such as
// "yesterday" or "last saturday".
type DateParser struct {
	w *when.Parser
}

func NewDateParser() *DateParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateParser{w: w}
}

// Parse returns midnight UTC of the resolved date. Empty input means today.
func (p *DateParser) Parse(input string, now time.Time) (time.Time, error) {
	today := scorecardtypes.DateOf(now)
	input = strings.TrimSpace(input)
	if input == "" {
		return today, nil
	}

	date, err := p.resolve(input, now)
	if err != nil {
		return time.Time{}, err
	}
	if date.After(today) {
		return time.Time{}, fmt.Errorf("%w: %s is after %s", ErrFutureDate, date.Format(isoDate), today.Format(isoDate))
	}
	return date, nil
}

func (p *DateParser) resolve(input string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(isoDate, input); err == nil {
		return t, nil
	}

	r, err := p.w.Parse(strings.ToLower(input), now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrUnrecognisedDate, input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognisedDate, input)
	}
	return scorecardtypes.DateOf(r.Time), nil
}

var _ DateParserInterface = (*DateParser)(nil)
