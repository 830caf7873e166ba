package catalog

import (
	"sort"
	"strings"

	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

// DailyRate is the aggregate per-island, per-vehicle-class hire rate,
// taken as the median of the matching cab legs.
type DailyRate struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
}

// Indexes are the lookup structures every core computation works
// from. Built once per table load; read-only afterwards, so
// concurrent use needs no locking.
type Indexes struct {
	Tables *refdata.Tables

	IslandByID     map[string]refdata.Island
	IslandIDByName map[string]string

	// LocationIslandIDs memoizes name-to-id resolution for every
	// location row; unresolved locations are absent.
	LocationIslandIDs map[string]string

	LocationToActivityIDs map[string][]string
	ActivityByID          map[string]refdata.Activity
	HotelByID             map[string]refdata.Hotel
	HotelsByIsland        map[string][]refdata.Hotel
	CabLegByID            map[string]refdata.CabLeg

	// CabDailyRates: island id -> vehicle class -> median day/night.
	CabDailyRates map[string]map[string]DailyRate

	islandRank map[string]int
}

// BuildIndexes constructs every lookup structure in one pass per
// table. Malformed rows are skipped, never fatal: a single bad join
// row must not take down the whole catalog.
func BuildIndexes(tables *refdata.Tables) *Indexes {
	ix := &Indexes{
		Tables:                tables,
		IslandByID:            make(map[string]refdata.Island),
		IslandIDByName:        make(map[string]string),
		LocationIslandIDs:     make(map[string]string),
		LocationToActivityIDs: make(map[string][]string),
		ActivityByID:          make(map[string]refdata.Activity),
		HotelByID:             make(map[string]refdata.Hotel),
		HotelsByIsland:        make(map[string][]refdata.Hotel),
		CabLegByID:            make(map[string]refdata.CabLeg),
		CabDailyRates:         make(map[string]map[string]DailyRate),
		islandRank:            make(map[string]int),
	}

	for _, island := range tables.Islands {
		if island.ID == "" {
			continue
		}
		ix.IslandByID[island.ID] = island
		if island.Name != "" {
			ix.IslandIDByName[island.Name] = island.ID
		}
	}
	ix.buildIslandRank(tables.Islands)

	for _, loc := range tables.Locations {
		if loc.ID == "" {
			continue
		}
		if id := ix.ResolveIslandID(loc.Island); id != "" {
			ix.LocationIslandIDs[loc.ID] = id
		}
	}

	for _, link := range tables.ActivityLinks {
		if link.LocationID == "" || len(link.ActivityIDs) == 0 {
			continue
		}
		ix.LocationToActivityIDs[link.LocationID] = append(
			ix.LocationToActivityIDs[link.LocationID],
			link.ActivityIDs...,
		)
	}

	for _, act := range tables.Activities {
		if act.ID == "" {
			continue
		}
		ix.ActivityByID[act.ID] = act
	}

	for _, hotel := range tables.Hotels {
		if hotel.ID == "" {
			continue
		}
		ix.HotelByID[hotel.ID] = hotel
		if hotel.IslandID != "" {
			ix.HotelsByIsland[hotel.IslandID] = append(
				ix.HotelsByIsland[hotel.IslandID],
				hotel,
			)
		}
	}

	for _, leg := range tables.CabLegs {
		if leg.ID != "" {
			ix.CabLegByID[leg.ID] = leg
		}
	}
	ix.buildCabDailyRates(tables.CabLegs)

	return ix
}

// ResolveIslandID maps a location's free-text island name to an
// island id: exact table match first, then the alias substring pass.
// Returns "" when nothing matches — callers treat that as unknown,
// not as an error.
func (ix *Indexes) ResolveIslandID(name string) string {
	if name == "" {
		return ""
	}
	if id, ok := ix.IslandIDByName[name]; ok {
		return id
	}

	lower := strings.ToLower(name)
	for _, alias := range islandAliases {
		if !strings.Contains(lower, alias.Substring) {
			continue
		}
		// Only resolve to islands that exist in this table.
		if _, ok := ix.IslandByID[alias.IslandID]; ok {
			return alias.IslandID
		}
	}
	return ""
}

// LocationIslandID returns the memoized resolution for a location row.
func (ix *Indexes) LocationIslandID(loc refdata.Location) string {
	if id, ok := ix.LocationIslandIDs[loc.ID]; ok {
		return id
	}
	return ""
}

func (ix *Indexes) buildIslandRank(islands []refdata.Island) {
	rank := 0
	for _, id := range canonicalIslandOrder {
		ix.islandRank[id] = rank
		rank++
	}
	for _, island := range islands {
		if _, ok := ix.islandRank[island.ID]; !ok && island.ID != "" {
			ix.islandRank[island.ID] = rank
			rank++
		}
	}
}

func (ix *Indexes) buildCabDailyRates(legs []refdata.CabLeg) {
	type key struct{ island, vehicle string }
	dayFares := make(map[key][]float64)
	nightFares := make(map[key][]float64)

	for _, leg := range legs {
		if leg.IslandID == "" || leg.VehicleClass == "" {
			continue
		}
		k := key{leg.IslandID, leg.VehicleClass}
		if f := float64(leg.DayFareINR); f > 0 {
			dayFares[k] = append(dayFares[k], f)
		}
		if f := float64(leg.NightFareINR); f > 0 {
			nightFares[k] = append(nightFares[k], f)
		}
	}

	set := func(k key, assign func(*DailyRate)) {
		byVehicle, ok := ix.CabDailyRates[k.island]
		if !ok {
			byVehicle = make(map[string]DailyRate)
			ix.CabDailyRates[k.island] = byVehicle
		}
		rate := byVehicle[k.vehicle]
		assign(&rate)
		byVehicle[k.vehicle] = rate
	}

	for k, fares := range dayFares {
		m := median(fares)
		set(k, func(r *DailyRate) { r.Day = m })
	}
	for k, fares := range nightFares {
		m := median(fares)
		set(k, func(r *DailyRate) { r.Night = m })
	}
}

// median of an ascending sort; even length averages the middle pair,
// empty input is 0.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
