package catalog

import (
	"testing"

	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

func TestFilterByIslandKeepsUnresolved(t *testing.T) {
	tables := testTables()
	ix := BuildIndexes(tables)

	got := ix.FilterLocations(tables.Locations, FilterCriteria{IslandIDs: []string{"HL"}})

	ids := make(map[string]bool)
	for _, loc := range got {
		ids[loc.ID] = true
	}

	if !ids["loc-1"] {
		t.Error("expected HL location to pass the island filter")
	}
	if ids["loc-2"] {
		t.Error("PB location must be excluded when filtering on HL")
	}
	// loc-3 has an unresolvable island name and must NOT be excluded
	// by the island criterion alone.
	if !ids["loc-3"] {
		t.Error("unresolved location was excluded by the island filter")
	}
}

func TestFilterBySearch(t *testing.T) {
	tables := testTables()
	ix := BuildIndexes(tables)

	got := ix.FilterLocations(tables.Locations, FilterCriteria{Search: "cellular"})
	if len(got) != 1 || got[0].ID != "loc-2" {
		t.Fatalf("search 'cellular' returned %d results", len(got))
	}
}

func TestFilterByMoodAndCategory(t *testing.T) {
	tables := testTables()
	ix := BuildIndexes(tables)

	if got := ix.FilterLocations(tables.Locations, FilterCriteria{Mood: "history"}); len(got) != 1 {
		t.Errorf("mood filter returned %d results, want 1", len(got))
	}
	if got := ix.FilterLocations(tables.Locations, FilterCriteria{Mood: "all", Category: "all"}); len(got) != 3 {
		t.Errorf("'all' filters returned %d results, want 3", len(got))
	}
	if got := ix.FilterLocations(tables.Locations, FilterCriteria{Category: "beach"}); len(got) != 2 {
		t.Errorf("category filter returned %d results, want 2", len(got))
	}
}

func TestCuratedBundles(t *testing.T) {
	ix := BuildIndexes(testTables())

	familyBeach := refdata.Location{
		ID:       "fb",
		Name:     "Family Beach",
		Moods:    []string{"family", "nature"},
		Category: "beach",
	}

	adventure := ix.FilterLocations([]refdata.Location{familyBeach}, FilterCriteria{Bundle: BundleAdventureHeavy})
	if len(adventure) != 0 {
		t.Error("adventure_heavy must exclude a family beach")
	}

	family := ix.FilterLocations([]refdata.Location{familyBeach}, FilterCriteria{Bundle: BundleFamilyPack})
	if len(family) != 1 {
		t.Error("family_pack must include a family-mood location")
	}

	mustSee := ix.FilterLocations([]refdata.Location{familyBeach}, FilterCriteria{Bundle: BundleMustSee})
	if len(mustSee) != 1 {
		t.Error("must_see must include beaches")
	}

	trek := refdata.Location{ID: "tk", Name: "Ridge Trek", Category: "trek"}
	if got := ix.FilterLocations([]refdata.Location{trek}, FilterCriteria{Bundle: BundleAdventureHeavy}); len(got) != 1 {
		t.Error("adventure_heavy must include trek category")
	}

	// Unknown bundle names behave like "all".
	if got := ix.FilterLocations([]refdata.Location{familyBeach}, FilterCriteria{Bundle: "mystery"}); len(got) != 1 {
		t.Error("unknown bundle must not filter anything")
	}
}
