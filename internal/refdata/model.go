package refdata

import (
	"encoding/json"
	"strconv"
	"strings"
)

// INR is a rupee amount decoded tolerantly: JSON numbers pass through,
// numeric strings are parsed, anything else becomes 0. Reference
// datasets are hand-maintained and not perfectly normalized.
type INR float64

func (m *INR) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*m = INR(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*m = INR(f)
			return nil
		}
	}
	*m = 0
	return nil
}

// Island is the primary join key source for locations, hotels and cabs.
// ID is a short code such as "PB".
type Island struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// Location is a point of interest. Island holds a display NAME, not an
// island id — the datasets are not normalized, so resolving it to an
// Island id is a separate matching step (see catalog.BuildIndexes).
type Location struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Island       string   `json:"island"`
	Category     string   `json:"category"`
	Moods        []string `json:"moods"`
	Brief        string   `json:"brief"`
	TypicalHours float64  `json:"typical_hours"`
	BestTime     string   `json:"best_time"`
	Slug         string   `json:"slug"`
}

// Pricing units for activities. Closed set; unknown values price as a
// single unit.
const (
	UnitPerPerson  = "per_person"
	UnitPerGroup   = "per_group"
	UnitPerBoat    = "per_boat"
	UnitPerVehicle = "per_vehicle"
	UnitPerTrip    = "per_trip"
)

type Activity struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	DurationMin  int      `json:"duration_min"`
	BasePriceINR INR      `json:"base_price_inr"`
	Unit         string   `json:"unit"`
	OperatedIn   []string `json:"operated_in"`
}

// ActivityLink joins one location to the activities offered there.
type ActivityLink struct {
	LocationID  string   `json:"location_id"`
	ActivityIDs []string `json:"activity_ids"`
}

type FerryOperator struct {
	Operator      string `json:"operator"`
	SampleFareINR INR    `json:"sample_fare_inr"`
}

// FerryRoute connects two islands. Undirected in practice: a stored
// route must match a query with origin and destination swapped.
type FerryRoute struct {
	ID                 string          `json:"id"`
	OriginID           string          `json:"origin_id"`
	DestinationID      string          `json:"destination_id"`
	Operators          []FerryOperator `json:"operators"`
	TypicalDurationMin int             `json:"typical_duration_min"`
}

// CabLeg is a zone-to-zone ground transport segment on one island.
type CabLeg struct {
	ID              string `json:"id"`
	IslandID        string `json:"island_id"`
	FromZone        string `json:"from_zone"`
	ToZone          string `json:"to_zone"`
	TripType        string `json:"trip_type"`
	VehicleClass    string `json:"vehicle_class"`
	ServiceClass    string `json:"service_class"`
	DayFareINR      INR    `json:"day_fare_inr"`
	NightFareINR    INR    `json:"night_fare_inr"`
	IncludedWaitMin int    `json:"included_wait_min"`
}

type Hotel struct {
	ID               string   `json:"id"`
	IslandID         string   `json:"island_id"`
	DisplayName      string   `json:"display_name"`
	Category         string   `json:"category"`
	Moods            []string `json:"moods"`
	Zone             string   `json:"zone"`
	StarRating       float64  `json:"star_rating"`
	MinNightlyINR    INR      `json:"min_nightly_inr"`
	MaxNightlyINR    INR      `json:"max_nightly_inr"`
	TypicalCoupleINR INR      `json:"typical_couple_inr"`
	IsBeachfront     bool     `json:"is_beachfront"`
}

// Tables holds every reference dataset, fully resident in memory.
// All core computations are pure functions over these plus the
// caller's selection state.
type Tables struct {
	Islands       []Island       `json:"islands"`
	Locations     []Location     `json:"locations"`
	Activities    []Activity     `json:"activities"`
	ActivityLinks []ActivityLink `json:"activity_links"`
	FerryRoutes   []FerryRoute   `json:"ferry_routes"`
	CabLegs       []CabLeg       `json:"cab_legs"`
	Hotels        []Hotel        `json:"hotels"`
	Pricing       PricingConfig  `json:"pricing"`
}
