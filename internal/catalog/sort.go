package catalog

import (
	"sort"
	"strings"

	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

// Sort modes for the location catalog.
const (
	SortName        = "name"
	SortDuration    = "duration"
	SortRecommended = "recommended"
)

// SortLocations orders locations by the given mode, in place, and
// returns the slice. Stable for a fixed input: no map iteration order
// leaks into the result.
func (ix *Indexes) SortLocations(locations []refdata.Location, mode string) []refdata.Location {
	switch mode {
	case SortName:
		sort.SliceStable(locations, func(i, j int) bool {
			return nameLess(locations[i].Name, locations[j].Name)
		})

	case SortDuration:
		sort.SliceStable(locations, func(i, j int) bool {
			a, b := locations[i].TypicalHours, locations[j].TypicalHours
			if a < 0 {
				a = 0
			}
			if b < 0 {
				b = 0
			}
			if a != b {
				return a < b
			}
			return nameLess(locations[i].Name, locations[j].Name)
		})

	default: // recommended
		sort.SliceStable(locations, func(i, j int) bool {
			a, b := ix.islandSortRank(locations[i]), ix.islandSortRank(locations[j])
			if a != b {
				return a < b
			}
			ha, hb := heroRank(locations[i].Name), heroRank(locations[j].Name)
			if ha != hb {
				return ha < hb
			}
			return nameLess(locations[i].Name, locations[j].Name)
		})
	}
	return locations
}

// islandSortRank: canonical circuit first, dataset order behind it,
// unknown islands last.
func (ix *Indexes) islandSortRank(loc refdata.Location) int {
	id := ix.LocationIslandID(loc)
	if id == "" {
		return len(ix.islandRank) + 1
	}
	if rank, ok := ix.islandRank[id]; ok {
		return rank
	}
	return len(ix.islandRank) + 1
}

func heroRank(name string) int {
	if heroLocations[name] {
		return 0
	}
	return 1
}

func nameLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
