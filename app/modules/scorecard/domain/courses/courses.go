// Package courses holds the built-in course layouts used when starting a round.
package courses

import (
	"slices"
	"strings"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
)

// Layout is a named course with one par value per hole.
type Layout struct {
	Name string
	Pars []int
}

var catalog = map[string]Layout{
	"augusta_national": {
		Name: "Augusta National",
		Pars: []int{4, 5, 4, 3, 4, 3, 4, 5, 4, 4, 4, 3, 5, 4, 5, 3, 4, 4},
	},
	"pebble_beach": {
		Name: "Pebble Beach",
		Pars: []int{4, 5, 4, 3, 4, 5, 3, 4, 4, 4, 4, 3, 4, 5, 4, 3, 4, 5},
	},
	"st_andrews": {
		Name: "St Andrews",
		Pars: []int{4, 4, 4, 5, 3, 4, 4, 3, 5, 4, 4, 3, 4, 4, 5, 3, 4, 4},
	},
	"torrey_pines_north": {
		Name: "Torrey Pines North",
		Pars: []int{4, 4, 3, 4, 5, 4, 4, 3, 5, 5, 4, 3, 4, 4, 3, 4, 5, 4},
	},
	"torrey_pines_south": {
		Name: "Torrey Pines South",
		Pars: []int{4, 4, 3, 4, 5, 5, 4, 3, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5},
	},
}

// Standard generates a layout by cycling par 4, 3, 5 across the holes.
func Standard(holes int) []int {
	if holes <= 0 {
		holes = scorecardtypes.StandardHoles
	}
	pars := make([]int, holes)
	for i := range pars {
		switch (i + 1) % 3 {
		case 0:
			pars[i] = 5
		case 1:
			pars[i] = 4
		default:
			pars[i] = 3
		}
	}
	return pars
}

// Lookup resolves a course by name. Unknown or empty names fall back to a
// standard layout with the requested number of holes.
func Lookup(name string, holes int) Layout {
	if layout, ok := catalog[key(name)]; ok {
		return Layout{Name: layout.Name, Pars: slices.Clone(layout.Pars)}
	}
	display := strings.TrimSpace(name)
	if display == "" {
		display = scorecardtypes.DefaultCourse
	}
	return Layout{Name: display, Pars: Standard(holes)}
}

// Known reports whether name is in the catalog.
func Known(name string) bool {
	_, ok := catalog[key(name)]
	return ok
}

// Names lists the catalog's display names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, layout := range catalog {
		names = append(names, layout.Name)
	}
	slices.Sort(names)
	return names
}

func key(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}
