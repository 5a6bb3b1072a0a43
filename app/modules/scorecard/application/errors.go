package scorecardservice

import (
	"errors"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/parsers"
	roundtime "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/time_utils"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
)

var (
	// ErrUnsupportedFormat indicates an import file type or export format the
	// parsers do not handle.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// isDomainFailure reports whether err is an expected business outcome rather
// than an infrastructure problem. Persistence errors are never domain
// failures, even when they wrap a validation error from decoding.
func isDomainFailure(err error) bool {
	if errors.Is(err, scorecardtypes.ErrPersistence) {
		return false
	}
	return scorecardtypes.IsValidationError(err) ||
		errors.Is(err, scorecardtypes.ErrNotFound) ||
		errors.Is(err, scorecardtypes.ErrDuplicatePlayer) ||
		errors.Is(err, scorecardtypes.ErrRoundComplete) ||
		errors.Is(err, scorecardtypes.ErrIncompleteRound) ||
		errors.Is(err, roundtime.ErrFutureDate) ||
		errors.Is(err, roundtime.ErrUnrecognisedDate) ||
		errors.Is(err, parsers.ErrInvalidFormat) ||
		errors.Is(err, ErrUnsupportedFormat)
}

// fail routes err into the result's Failure for domain outcomes and into the
// error return otherwise.
func fail[S any](err error) (results.OperationResult[S, error], error) {
	if isDomainFailure(err) {
		return results.FailureResult[S, error](err), nil
	}
	return results.OperationResult[S, error]{}, err
}
