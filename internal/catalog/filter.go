package catalog

import (
	"strings"

	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

// Curated bundle names. Closed set; anything else behaves like "all".
const (
	BundleAll            = "all"
	BundleMustSee        = "must_see"
	BundleFamilyPack     = "family_pack"
	BundleAdventureHeavy = "adventure_heavy"
	BundleOffbeatGems    = "offbeat_gems"
)

// bundlePredicates keeps the quick-pick filters auditable in one
// table instead of chained conditionals.
var bundlePredicates = map[string]func(moods map[string]bool, category string) bool{
	BundleMustSee: func(_ map[string]bool, category string) bool {
		switch category {
		case "beach", "island", "attraction", "park":
			return true
		}
		return false
	},
	BundleFamilyPack: func(moods map[string]bool, _ string) bool {
		return moods["family"]
	},
	BundleAdventureHeavy: func(moods map[string]bool, category string) bool {
		return moods["adventure"] || category == "trek" || category == "dive_site"
	},
	BundleOffbeatGems: func(moods map[string]bool, _ string) bool {
		return moods["offbeat"]
	},
}

// FilterCriteria narrows the location catalog. Zero values (and the
// literal "all") mean "no filter" for their field.
type FilterCriteria struct {
	IslandIDs []string
	Search    string
	Mood      string
	Category  string
	Bundle    string
}

// FilterLocations applies every criterion and returns a fresh slice
// in the input order. A location whose island could not be resolved
// is never excluded by the island criterion alone.
func (ix *Indexes) FilterLocations(locations []refdata.Location, criteria FilterCriteria) []refdata.Location {
	islandSet := make(map[string]bool, len(criteria.IslandIDs))
	for _, id := range criteria.IslandIDs {
		islandSet[id] = true
	}

	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	out := make([]refdata.Location, 0, len(locations))
	for _, loc := range locations {
		if len(islandSet) > 0 {
			if id := ix.LocationIslandID(loc); id != "" && !islandSet[id] {
				continue
			}
		}

		if search != "" {
			haystack := strings.ToLower(loc.Name + " " + loc.Brief + " " + loc.Slug)
			if !strings.Contains(haystack, search) {
				continue
			}
		}

		moods := moodSet(loc.Moods)

		if criteria.Mood != "" && criteria.Mood != "all" && !moods[criteria.Mood] {
			continue
		}
		if criteria.Category != "" && criteria.Category != "all" && loc.Category != criteria.Category {
			continue
		}

		if pred, ok := bundlePredicates[criteria.Bundle]; ok {
			if !pred(moods, loc.Category) {
				continue
			}
		}

		out = append(out, loc)
	}
	return out
}

func moodSet(moods []string) map[string]bool {
	set := make(map[string]bool, len(moods))
	for _, m := range moods {
		set[m] = true
	}
	return set
}
