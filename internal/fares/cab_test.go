package fares

import (
	"testing"

	"github.com/fishhunter29/andaman-planner-v3/internal/catalog"
	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

func testLegs() []refdata.CabLeg {
	return []refdata.CabLeg{
		{
			ID: "cab-1", IslandID: "PB", FromZone: "Airport", ToZone: "Aberdeen",
			TripType: "oneway", VehicleClass: "sedan", ServiceClass: "standard",
			DayFareINR: 800, NightFareINR: 1000,
		},
		{
			ID: "cab-2", IslandID: "PB", FromZone: "Airport", ToZone: "Aberdeen",
			TripType: "roundtrip", VehicleClass: "suv", ServiceClass: "standard",
			DayFareINR: 1500,
		},
		{
			ID: "cab-3", IslandID: "HL", FromZone: "Jetty", ToZone: "Radhanagar",
			TripType: "oneway", VehicleClass: "sedan", ServiceClass: "standard",
			DayFareINR: 1200,
		},
	}
}

func TestFindCabLegExactMatch(t *testing.T) {
	leg := FindCabLeg(testLegs(), LegRequest{
		IslandID: "PB", FromZone: "Airport", ToZone: "Aberdeen",
		TripType: "oneway", VehicleClass: "sedan", ServiceClass: "standard",
	})
	if leg == nil || leg.ID != "cab-1" {
		t.Fatal("exact match failed")
	}
}

func TestFindCabLegRelaxesServiceClass(t *testing.T) {
	// "premium" exists nowhere; the second layer drops service class
	// and must still resolve.
	leg := FindCabLeg(testLegs(), LegRequest{
		IslandID: "PB", FromZone: "Airport", ToZone: "Aberdeen",
		TripType: "oneway", VehicleClass: "sedan", ServiceClass: "premium",
	})
	if leg == nil {
		t.Fatal("service-class relaxation did not fire")
	}
	if leg.ID != "cab-1" {
		t.Fatalf("resolved %s, want cab-1", leg.ID)
	}
}

func TestFindCabLegRelaxesToZonesOnly(t *testing.T) {
	leg := FindCabLeg(testLegs(), LegRequest{
		IslandID: "PB", FromZone: "airport ", ToZone: " aberdeen",
		TripType: "shared", VehicleClass: "tempo", ServiceClass: "luxury",
	})
	if leg == nil {
		t.Fatal("loosest layer should match on island+zones alone")
	}
}

func TestFindCabLegReturnsNilBeyondLoosestLayer(t *testing.T) {
	leg := FindCabLeg(testLegs(), LegRequest{
		IslandID: "PB", FromZone: "Airport", ToZone: "Wandoor",
	})
	if leg != nil {
		t.Fatal("no zone match must yield nil, not a guess")
	}
}

func TestEstimateCabLegFareNightFallback(t *testing.T) {
	legs := testLegs()

	// Night requested and present.
	if got := EstimateCabLegFare(legs[0], FareOptions{Night: true}); got != 1000 {
		t.Errorf("night fare = %v, want 1000", got)
	}
	// Night requested but absent: falls back to day.
	if got := EstimateCabLegFare(legs[1], FareOptions{Night: true}); got != 1500 {
		t.Errorf("night fallback = %v, want 1500", got)
	}
	// Day requested.
	if got := EstimateCabLegFare(legs[0], FareOptions{}); got != 800 {
		t.Errorf("day fare = %v, want 800", got)
	}
}

func TestEstimateCabLegFareMultiplier(t *testing.T) {
	if got := EstimateCabLegFare(testLegs()[0], FareOptions{Multiplier: 1.5}); got != 1200 {
		t.Errorf("multiplied fare = %v, want 1200", got)
	}
	// Non-positive multiplier defaults to 1.
	if got := EstimateCabLegFare(testLegs()[0], FareOptions{Multiplier: -2}); got != 800 {
		t.Errorf("defaulted multiplier fare = %v, want 800", got)
	}
}

func TestPerPersonFare(t *testing.T) {
	if got := PerPersonFare(1200, 3); got != 400 {
		t.Errorf("per-person = %v, want 400", got)
	}
	if got := PerPersonFare(1200, 0); got != 1200 {
		t.Errorf("minimum divisor is 1, got %v", got)
	}
}

func TestEstimateDailyHire(t *testing.T) {
	rate := catalog.DailyRate{Day: 2200, Night: 2600}

	if got := EstimateDailyHire(rate, false, 3, 0); got != 6600 {
		t.Errorf("day hire = %v, want 6600", got)
	}
	if got := EstimateDailyHire(rate, true, 2, 0); got != 5200 {
		t.Errorf("night hire = %v, want 5200", got)
	}
	// Missing night rate falls back to day.
	if got := EstimateDailyHire(catalog.DailyRate{Day: 2000}, true, 1, 0); got != 2000 {
		t.Errorf("night->day fallback = %v, want 2000", got)
	}
	// Empty rate falls back to the configured per-day base.
	if got := EstimateDailyHire(catalog.DailyRate{}, false, 2, 1800); got != 3600 {
		t.Errorf("config fallback = %v, want 3600", got)
	}
}
