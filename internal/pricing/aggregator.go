package pricing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fishhunter29/andaman-planner-v3/internal/catalog"
	"github.com/fishhunter29/andaman-planner-v3/internal/fares"
	"github.com/fishhunter29/andaman-planner-v3/internal/money"
	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

const guestsPerRoom = 2

// unitMultipliers prices an activity unit against the party size.
// Everything except per_person is flat for the whole group; unknown
// units degrade to flat rather than failing.
var unitMultipliers = map[string]func(travelers int) float64{
	refdata.UnitPerPerson:  func(n int) float64 { return float64(n) },
	refdata.UnitPerGroup:   flatUnit,
	refdata.UnitPerBoat:    flatUnit,
	refdata.UnitPerVehicle: flatUnit,
	refdata.UnitPerTrip:    flatUnit,
}

func flatUnit(int) float64 { return 1 }

// ComputeTripCost turns the selection state plus built indexes into
// the full breakdown. Pure: same inputs, same output, and unpriceable
// selections become zero-amount lines, never errors. Panics only on
// contract violations (nil indexes).
func ComputeTripCost(sel Selections, ix *catalog.Indexes, cfg refdata.PricingConfig) Breakdown {
	if ix == nil || ix.Tables == nil {
		panic("pricing: ComputeTripCost called before indexes were built")
	}

	travelers := sel.Travelers()

	b := Breakdown{
		Hotels:     hotelCategory(sel, ix, cfg, travelers),
		Cabs:       cabCategory(sel, ix, cfg),
		Activities: activityCategory(sel, ix, cfg, travelers),
		Ferries:    ferryCategory(sel, ix, travelers),
	}

	b.Subtotal = money.Round2(b.Hotels.Total + b.Cabs.Total + b.Activities.Total + b.Ferries.Total)
	b.Tax = money.Round2(b.Subtotal * money.SafeNum(cfg.TaxPercent) / 100)
	b.ServiceFee = money.SafeNum(float64(cfg.ServiceFeeINR))
	b.GrandTotal = money.Round2(b.Subtotal + b.Tax + b.ServiceFee)
	b.PerPerson = money.Round2(b.GrandTotal / float64(travelers))
	return b
}

// NightlyRate resolves a hotel's nightly figure through the fallback
// chain: typical couple rate, then minimum, then maximum, then 0.
func NightlyRate(hotel refdata.Hotel) float64 {
	for _, v := range []float64{
		float64(hotel.TypicalCoupleINR),
		float64(hotel.MinNightlyINR),
		float64(hotel.MaxNightlyINR),
	} {
		if f := money.SafeNum(v); f > 0 {
			return f
		}
	}
	return 0
}

func hotelCategory(sel Selections, ix *catalog.Indexes, cfg refdata.PricingConfig, travelers int) Category {
	rooms := int(math.Ceil(float64(travelers) / guestsPerRoom))
	if rooms < 1 {
		rooms = 1
	}

	cat := Category{Lines: []Line{}}
	for _, hotelID := range sortedKeys(sel.HotelNights) {
		nights := sel.HotelNights[hotelID]
		if nights < 1 {
			continue
		}

		hotel, ok := ix.HotelByID[hotelID]
		if !ok {
			cat.Lines = append(cat.Lines, Line{
				Label: hotelID,
				Qty:   float64(nights),
				Note:  "price unavailable",
			})
			continue
		}

		nightly := NightlyRate(hotel)
		total := money.Round2(nightly * float64(nights) * float64(rooms) * (1 + money.SafeNum(cfg.HotelMarkup)))

		line := Line{
			Label:      fmt.Sprintf("%s × %d night(s), %d room(s)", hotel.DisplayName, nights, rooms),
			Qty:        float64(nights * rooms),
			UnitAmount: nightly,
			Total:      total,
		}
		if nightly == 0 {
			line.Note = "price unavailable"
		}
		cat.Lines = append(cat.Lines, line)
		cat.Total += total
	}
	cat.Total = money.Round2(cat.Total)
	return cat
}

// cabCategory dispatches on the configured pricing mode. The two
// modes read different source tables and are deliberately kept apart.
// Markup applies once per line, never to the aggregate.
func cabCategory(sel Selections, ix *catalog.Indexes, cfg refdata.PricingConfig) Category {
	markup := 1 + money.SafeNum(cfg.CabMarkup)

	cat := Category{Lines: []Line{}}
	switch cfg.CabPricingMode {
	case refdata.CabModeItineraryLegs:
		for _, use := range sel.CabLegs {
			count := use.Count
			if count < 1 {
				count = 1
			}

			leg, ok := ix.CabLegByID[use.LegID]
			if !ok {
				cat.Lines = append(cat.Lines, Line{
					Label: use.LegID,
					Qty:   float64(count),
					Note:  "price unavailable",
				})
				continue
			}

			fare := fares.EstimateCabLegFare(leg, fares.FareOptions{
				Night:      strings.EqualFold(use.TimeOfDay, "night"),
				Multiplier: cfg.MinCabFareMultiplier,
			})
			total := money.Round2(fare * float64(count) * markup)

			line := Line{
				Label:      fmt.Sprintf("%s → %s (%s)", leg.FromZone, leg.ToZone, leg.VehicleClass),
				Qty:        float64(count),
				UnitAmount: fare,
				Total:      total,
			}
			if fare == 0 {
				line.Note = "price unavailable"
			}
			cat.Lines = append(cat.Lines, line)
			cat.Total += total
		}

	default: // daily hire
		for _, hire := range sel.CabHires {
			days := hire.Days
			if days < 1 {
				days = 1
			}

			rate := ix.CabDailyRates[hire.IslandID][hire.VehicleClass]
			base := fares.EstimateDailyHire(rate, false, days, float64(cfg.CabPerDayBaseINR))
			total := money.Round2(base * markup)

			line := Line{
				Label:      fmt.Sprintf("%s daily hire on %s × %d day(s)", hire.VehicleClass, hire.IslandID, days),
				Qty:        float64(days),
				UnitAmount: money.SafeNum(base) / float64(days),
				Total:      total,
			}
			if base == 0 {
				line.Note = "price unavailable"
			}
			cat.Lines = append(cat.Lines, line)
			cat.Total += total
		}
	}
	cat.Total = money.Round2(cat.Total)
	return cat
}

func activityCategory(sel Selections, ix *catalog.Indexes, cfg refdata.PricingConfig, travelers int) Category {
	markup := 1 + money.SafeNum(cfg.ActivityMarkup)

	cat := Category{Lines: []Line{}}
	for _, activityID := range sel.ActivityIDs {
		act, ok := ix.ActivityByID[activityID]
		if !ok {
			cat.Lines = append(cat.Lines, Line{
				Label: activityID,
				Qty:   1,
				Note:  "price unavailable",
			})
			continue
		}

		mult := flatUnit(travelers)
		if fn, ok := unitMultipliers[act.Unit]; ok {
			mult = fn(travelers)
		}

		base := money.SafeNum(float64(act.BasePriceINR))
		total := money.Round2(base * mult * markup)

		line := Line{
			Label:      act.Name,
			Qty:        mult,
			UnitAmount: base,
			Total:      total,
		}
		if base == 0 {
			line.Note = "price unavailable"
		}
		cat.Lines = append(cat.Lines, line)
		cat.Total += total
	}
	cat.Total = money.Round2(cat.Total)
	return cat
}

// ferryCategory: all-inclusive retail, no markup.
func ferryCategory(sel Selections, ix *catalog.Indexes, travelers int) Category {
	cat := Category{Lines: []Line{}}

	seq := fares.BuildVisitSequence(sel.IslandIDs)
	for i := 0; i+1 < len(seq); i++ {
		route := fares.FindRoute(ix.Tables.FerryRoutes, seq[i], seq[i+1])

		line := Line{
			Label: fmt.Sprintf("Ferry %s → %s", seq[i], seq[i+1]),
			Qty:   float64(travelers),
		}
		if route != nil {
			line.UnitAmount = fares.MinOperatorFare(*route)
			line.Total = money.Round2(line.UnitAmount * float64(travelers))
		}
		if line.Total == 0 {
			line.Note = "price unavailable"
		}
		cat.Lines = append(cat.Lines, line)
		cat.Total += line.Total
	}
	cat.Total = money.Round2(cat.Total)
	return cat
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic output for identical input: map order must not
	// leak into the breakdown.
	sort.Strings(keys)
	return keys
}
