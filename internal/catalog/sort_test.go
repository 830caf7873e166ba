package catalog

import (
	"reflect"
	"testing"

	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

func TestSortByName(t *testing.T) {
	tables := testTables()
	ix := BuildIndexes(tables)

	got := ix.SortLocations(append([]refdata.Location{}, tables.Locations...), SortName)

	if got[0].Name != "Cellular Jail" || got[1].Name != "Mystery Point" || got[2].Name != "Radhanagar Beach" {
		t.Fatalf("name sort order wrong: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestSortByDurationTreatsMissingAsZero(t *testing.T) {
	ix := BuildIndexes(testTables())

	locs := []refdata.Location{
		{ID: "a", Name: "Zulu Walk", TypicalHours: 2},
		{ID: "b", Name: "Alpha Walk"}, // missing hours -> 0, sorts first
		{ID: "c", Name: "Beta Walk", TypicalHours: 2},
	}

	got := ix.SortLocations(locs, SortDuration)
	if got[0].ID != "b" {
		t.Fatalf("missing duration should sort first, got %s", got[0].ID)
	}
	// Ties broken by name.
	if got[1].Name != "Beta Walk" || got[2].Name != "Zulu Walk" {
		t.Fatalf("duration ties not broken by name: %s, %s", got[1].Name, got[2].Name)
	}
}

func TestRecommendedOrdering(t *testing.T) {
	tables := testTables()
	ix := BuildIndexes(tables)

	got := ix.SortLocations(append([]refdata.Location{}, tables.Locations...), SortRecommended)

	// PB before HL in the canonical circuit, unresolved island last.
	if got[0].ID != "loc-2" || got[1].ID != "loc-1" || got[2].ID != "loc-3" {
		t.Fatalf("recommended order wrong: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestRecommendedHeroBoost(t *testing.T) {
	ix := BuildIndexes(testTables())

	locs := []refdata.Location{
		{ID: "x", Name: "Aardvark Beach", Island: "Havelock"},
		{ID: "hero", Name: "Radhanagar Beach", Island: "Havelock"},
	}
	// Neither row is in the memoized location map; both resolve to
	// the same rank, so the hero boost decides.
	got := ix.SortLocations(locs, SortRecommended)
	if got[0].ID != "hero" {
		t.Fatalf("hero location not boosted, got %s first", got[0].ID)
	}
}

func TestFilterThenSortIsStableAcrossRuns(t *testing.T) {
	tables := testTables()
	ix := BuildIndexes(tables)

	run := func() []refdata.Location {
		filtered := ix.FilterLocations(tables.Locations, FilterCriteria{Category: "beach"})
		return ix.SortLocations(filtered, SortRecommended)
	}

	if !reflect.DeepEqual(run(), run()) {
		t.Fatal("identical runs produced different orderings")
	}
}
