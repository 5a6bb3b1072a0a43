package scorecardtypes

import "errors"

// Domain errors. Callers match them with errors.Is; every constructor and
// mutator wraps one of these with the offending values.
var (
	// ErrOutOfRange indicates an invalid hole index, stroke count or handicap.
	ErrOutOfRange = errors.New("out of range")

	// ErrIncompleteRound indicates a hole in the requested range has no recorded score.
	ErrIncompleteRound = errors.New("incomplete round")

	// ErrRoundComplete indicates an attempt to modify a scorecard after the round was completed.
	ErrRoundComplete = errors.New("round already complete")

	// ErrInvalidPar indicates a par value outside 3..5.
	ErrInvalidPar = errors.New("invalid par")

	// ErrEmptyName indicates a blank player name.
	ErrEmptyName = errors.New("player name cannot be empty")

	// ErrDuplicatePlayer indicates a player with the same name already exists.
	ErrDuplicatePlayer = errors.New("player already exists")

	// ErrNotFound indicates the requested player or scorecard does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPersistence indicates reading or writing local storage failed.
	ErrPersistence = errors.New("persistence failure")
)

// IsValidationError reports whether err was caused by invalid caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInvalidPar) ||
		errors.Is(err, ErrEmptyName)
}

// IsNotFound reports whether err signals a missing player or scorecard.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
