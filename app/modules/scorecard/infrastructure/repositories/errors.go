package scorecarddb

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
)

// ErrNotFound indicates the requested record does not exist. It is the domain
// sentinel so services can match it without importing this package.
var ErrNotFound = scorecardtypes.ErrNotFound

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", scorecardtypes.ErrPersistence, op, err)
}

func sortPlayers(players []scorecardtypes.Player) {
	slices.SortFunc(players, func(a, b scorecardtypes.Player) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}

func sortScorecards(cards []*scorecardtypes.Scorecard) {
	slices.SortFunc(cards, func(a, b *scorecardtypes.Scorecard) int {
		if c := a.Round().PlayedOn.Compare(b.Round().PlayedOn); c != 0 {
			return c
		}
		return cmp.Compare(a.RoundID().String(), b.RoundID().String())
	})
}
