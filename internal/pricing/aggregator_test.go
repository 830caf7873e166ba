package pricing

import (
	"math"
	"testing"

	"github.com/fishhunter29/andaman-planner-v3/internal/catalog"
	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

func testTables() *refdata.Tables {
	return &refdata.Tables{
		Islands: []refdata.Island{
			{ID: "PB", Name: "Port Blair"},
			{ID: "HL", Name: "Swaraj Dweep"},
		},
		Activities: []refdata.Activity{
			{ID: "act-person", Name: "Scuba Dive", Unit: refdata.UnitPerPerson, BasePriceINR: 1200},
			{ID: "act-boat", Name: "Glass Boat", Unit: refdata.UnitPerBoat, BasePriceINR: 1200},
		},
		FerryRoutes: []refdata.FerryRoute{
			{
				ID: "fr-1", OriginID: "PB", DestinationID: "HL",
				Operators: []refdata.FerryOperator{{Operator: "Makruzz", SampleFareINR: 1150}},
			},
		},
		CabLegs: []refdata.CabLeg{
			{ID: "cab-1", IslandID: "PB", FromZone: "AIRPORT", ToZone: "ABERDEEN", VehicleClass: "sedan", DayFareINR: 1000},
			{ID: "cab-2", IslandID: "PB", FromZone: "ABERDEEN", ToZone: "WANDOOR", VehicleClass: "sedan", DayFareINR: 1400},
		},
		Hotels: []refdata.Hotel{
			{ID: "htl-1", IslandID: "HL", DisplayName: "Reef Resort", TypicalCoupleINR: 6500},
			{ID: "htl-2", IslandID: "HL", DisplayName: "No Price Lodge"},
		},
	}
}

func testConfig() refdata.PricingConfig {
	return refdata.PricingConfig{
		Currency:       "INR",
		TaxPercent:     18,
		ServiceFeeINR:  199,
		HotelMarkup:    0.20,
		CabMarkup:      0.10,
		ActivityMarkup: 0.15,
		CabPricingMode: refdata.CabModeDailyHire,
	}.ApplyDefaults()
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestHotelLinePerRoomScaling(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	sel := Selections{
		HotelNights: map[string]int{"htl-1": 3},
		Adults:      2,
		Nights:      3,
	}

	b := ComputeTripCost(sel, ix, testConfig())

	// 2 travelers -> 1 room: 6500 * 3 * 1 * 1.2 = 23400
	if !almostEqual(b.Hotels.Total, 23400) {
		t.Fatalf("hotel total = %v, want 23400", b.Hotels.Total)
	}

	// Grand total = subtotal * 1.18 + service fee.
	wantGrand := 23400*1.18 + 199
	if !almostEqual(b.GrandTotal, wantGrand) {
		t.Fatalf("grand total = %v, want %v", b.GrandTotal, wantGrand)
	}
	if !almostEqual(b.PerPerson, wantGrand/2) {
		t.Fatalf("per person = %v, want %v", b.PerPerson, wantGrand/2)
	}
}

func TestHotelRoomCountScalesWithParty(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	sel := Selections{
		HotelNights: map[string]int{"htl-1": 2},
		Adults:      3, // ceil(3/2) = 2 rooms
	}

	b := ComputeTripCost(sel, ix, testConfig())
	want := 6500.0 * 2 * 2 * 1.2
	if !almostEqual(b.Hotels.Total, want) {
		t.Fatalf("hotel total = %v, want %v", b.Hotels.Total, want)
	}
}

func TestHotelWithoutAnyRateIsZeroLine(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	sel := Selections{HotelNights: map[string]int{"htl-2": 2}, Adults: 2}
	b := ComputeTripCost(sel, ix, testConfig())

	if b.Hotels.Total != 0 {
		t.Fatalf("unpriceable hotel total = %v, want 0", b.Hotels.Total)
	}
	if len(b.Hotels.Lines) != 1 || b.Hotels.Lines[0].Note == "" {
		t.Fatal("expected a zero-amount line flagged as unavailable")
	}
}

func TestActivityUnitPricing(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	sel := Selections{
		ActivityIDs: []string{"act-person", "act-boat"},
		Adults:      3,
	}

	b := ComputeTripCost(sel, ix, testConfig())

	// per_person: 1200 * 3 * 1.15; per_boat: 1200 * 1.15 regardless
	// of party size.
	wantPerson := 1200.0 * 3 * 1.15
	wantBoat := 1200.0 * 1.15
	if !almostEqual(b.Activities.Lines[0].Total, wantPerson) {
		t.Errorf("per_person line = %v, want %v", b.Activities.Lines[0].Total, wantPerson)
	}
	if !almostEqual(b.Activities.Lines[1].Total, wantBoat) {
		t.Errorf("per_boat line = %v, want %v", b.Activities.Lines[1].Total, wantBoat)
	}
	if !almostEqual(b.Activities.Total, wantPerson+wantBoat) {
		t.Errorf("activities total = %v", b.Activities.Total)
	}
}

func TestFerryCategoryNoMarkup(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	sel := Selections{IslandIDs: []string{"PB", "HL"}, Adults: 2}
	b := ComputeTripCost(sel, ix, testConfig())

	// Sequence PB→HL→PB, both legs on the same undirected route.
	want := 1150.0 * 2 * 2
	if !almostEqual(b.Ferries.Total, want) {
		t.Fatalf("ferries total = %v, want %v", b.Ferries.Total, want)
	}
}

func TestCabDailyHireMode(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	sel := Selections{
		CabHires: []CabHire{{IslandID: "PB", VehicleClass: "sedan", Days: 2}},
		Adults:   2,
	}
	b := ComputeTripCost(sel, ix, testConfig())

	// Median of {1000, 1400} = 1200; 1200 * 2 days * 1.1 markup.
	want := 1200.0 * 2 * 1.1
	if !almostEqual(b.Cabs.Total, want) {
		t.Fatalf("daily hire total = %v, want %v", b.Cabs.Total, want)
	}
}

func TestCabItineraryLegMode(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	cfg := testConfig()
	cfg.CabPricingMode = refdata.CabModeItineraryLegs

	sel := Selections{
		CabLegs: []CabLegUse{
			{LegID: "cab-1", TimeOfDay: "day", Count: 2},
			{LegID: "ghost", Count: 1},
		},
		Adults: 2,
	}
	b := ComputeTripCost(sel, ix, cfg)

	// 1000 * 2 * 1.1; the unknown leg is a zero line, not an error.
	want := 1000.0 * 2 * 1.1
	if !almostEqual(b.Cabs.Total, want) {
		t.Fatalf("itinerary total = %v, want %v", b.Cabs.Total, want)
	}
	if len(b.Cabs.Lines) != 2 || b.Cabs.Lines[1].Note == "" {
		t.Fatal("unknown leg should surface as an unavailable line")
	}
}

func TestEmptySelectionsStillCarryFeeStructure(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	b := ComputeTripCost(Selections{Adults: 2}, ix, testConfig())
	if b.Subtotal != 0 || b.Tax != 0 {
		t.Fatalf("empty selections produced subtotal %v tax %v", b.Subtotal, b.Tax)
	}
	if b.GrandTotal != 199 {
		t.Fatalf("grand total = %v, want service fee only", b.GrandTotal)
	}
}

func TestComputeTripCostPanicsWithoutIndexes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil indexes")
		}
	}()
	ComputeTripCost(Selections{}, nil, testConfig())
}

func TestBreakdownIsDeterministic(t *testing.T) {
	ix := catalog.BuildIndexes(testTables())

	sel := Selections{
		IslandIDs:   []string{"PB", "HL"},
		ActivityIDs: []string{"act-person"},
		HotelNights: map[string]int{"htl-1": 1, "htl-2": 1},
		Adults:      2,
	}

	a := ComputeTripCost(sel, ix, testConfig())
	b := ComputeTripCost(sel, ix, testConfig())
	if a.GrandTotal != b.GrandTotal || len(a.Hotels.Lines) != len(b.Hotels.Lines) {
		t.Fatal("repeated computation differed")
	}
	if a.Hotels.Lines[0].Label != b.Hotels.Lines[0].Label {
		t.Fatal("hotel line order leaked map iteration order")
	}
}
