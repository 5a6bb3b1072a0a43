package scorecardtypes

import (
	"fmt"
	"math"
)

const (
	MinStrokes = 1
	MaxStrokes = 15

	MinPar = 3
	MaxPar = 5

	MaxHoles      = 36
	StandardHoles = 18

	MinHandicap = -10.0
	MaxHandicap = 54.0
)

func validateHoleNumber(hole, holeCount int) error {
	if hole < 1 || hole > holeCount {
		return fmt.Errorf("%w: hole %d must be between 1 and %d", ErrOutOfRange, hole, holeCount)
	}
	return nil
}

func validateStrokes(strokes, hole int) error {
	if strokes < MinStrokes || strokes > MaxStrokes {
		return fmt.Errorf("%w: %d strokes on hole %d, must be between %d and %d",
			ErrOutOfRange, strokes, hole, MinStrokes, MaxStrokes)
	}
	return nil
}

func validatePar(par, hole int) error {
	if par < MinPar || par > MaxPar {
		return fmt.Errorf("%w: par %d on hole %d, must be 3, 4 or 5", ErrInvalidPar, par, hole)
	}
	return nil
}

// ValidatePars checks a course layout: 1..MaxHoles holes, each par 3..5.
func ValidatePars(pars []int) error {
	if len(pars) == 0 || len(pars) > MaxHoles {
		return fmt.Errorf("%w: %d holes, must be between 1 and %d", ErrOutOfRange, len(pars), MaxHoles)
	}
	for i, par := range pars {
		if err := validatePar(par, i+1); err != nil {
			return err
		}
	}
	return nil
}

func validateHandicap(handicap *float64) error {
	if handicap == nil {
		return nil
	}
	if math.IsNaN(*handicap) || *handicap < MinHandicap || *handicap > MaxHandicap {
		return fmt.Errorf("%w: handicap %.1f must be between %.1f and %.1f",
			ErrOutOfRange, *handicap, MinHandicap, MaxHandicap)
	}
	return nil
}
