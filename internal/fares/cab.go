package fares

import (
	"strings"

	"github.com/fishhunter29/andaman-planner-v3/internal/catalog"
	"github.com/fishhunter29/andaman-planner-v3/internal/money"
	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

// LegRequest describes a point-to-point cab lookup. String fields are
// matched case- and whitespace-insensitively.
type LegRequest struct {
	IslandID     string `json:"island_id"`
	FromZone     string `json:"from_zone"`
	ToZone       string `json:"to_zone"`
	TripType     string `json:"trip_type"`
	VehicleClass string `json:"vehicle_class"`
	ServiceClass string `json:"service_class"`
}

// relaxLayer says which optional constraints still apply at that
// stage of matching. Island + zones are always required. The order of
// this table IS the relaxation order; first layer with a hit wins.
type relaxLayer struct {
	Name         string
	TripType     bool
	VehicleClass bool
	ServiceClass bool
}

var relaxLayers = []relaxLayer{
	{Name: "exact", TripType: true, VehicleClass: true, ServiceClass: true},
	{Name: "any_service_class", TripType: true, VehicleClass: true},
	{Name: "any_trip_type", VehicleClass: true},
	{Name: "zones_only"},
}

// FindCabLeg resolves a request against the leg table using layered
// relaxation. Nil means "price unknown", never an error.
func FindCabLeg(legs []refdata.CabLeg, req LegRequest) *refdata.CabLeg {
	island := norm(req.IslandID)
	from := norm(req.FromZone)
	to := norm(req.ToZone)

	for _, layer := range relaxLayers {
		for i := range legs {
			leg := &legs[i]
			if norm(leg.IslandID) != island ||
				norm(leg.FromZone) != from ||
				norm(leg.ToZone) != to {
				continue
			}
			if layer.TripType && norm(leg.TripType) != norm(req.TripType) {
				continue
			}
			if layer.VehicleClass && norm(leg.VehicleClass) != norm(req.VehicleClass) {
				continue
			}
			if layer.ServiceClass && norm(leg.ServiceClass) != norm(req.ServiceClass) {
				continue
			}
			return leg
		}
	}
	return nil
}

// FareOptions controls fare selection for a resolved leg.
type FareOptions struct {
	Night      bool
	Multiplier float64 // global config multiplier; <=0 means 1
}

// EstimateCabLegFare picks the per-vehicle fare for a leg: night fare
// when requested and positive, otherwise day fare, otherwise whichever
// side is usable.
func EstimateCabLegFare(leg refdata.CabLeg, opts FareOptions) float64 {
	day := money.SafeNum(float64(leg.DayFareINR))
	night := money.SafeNum(float64(leg.NightFareINR))

	fare := day
	if opts.Night && night > 0 {
		fare = night
	}
	if fare <= 0 {
		if night > 0 {
			fare = night
		} else {
			fare = day
		}
	}

	multiplier := opts.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	return money.SafeNum(fare * multiplier)
}

// PerPersonFare splits a per-vehicle fare across travelers.
func PerPersonFare(vehicleFare float64, travelers int) float64 {
	if travelers < 1 {
		travelers = 1
	}
	return money.SafeNum(vehicleFare) / float64(travelers)
}

// EstimateDailyHire prices the flat daily-hire mode from the
// aggregated median rate table, with the config per-day base as the
// fallback when the table has no row.
func EstimateDailyHire(rate catalog.DailyRate, night bool, days int, fallbackPerDay float64) float64 {
	if days < 1 {
		return 0
	}

	day := money.SafeNum(rate.Day)
	nightRate := money.SafeNum(rate.Night)

	base := day
	if night {
		base = nightRate
		if base == 0 {
			base = day
		}
	} else if base == 0 {
		base = nightRate
	}
	if base == 0 {
		base = money.SafeNum(fallbackPerDay)
	}

	return base * float64(days)
}

func norm(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
