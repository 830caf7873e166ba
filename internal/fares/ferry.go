package fares

import (
	"github.com/fishhunter29/andaman-planner-v3/internal/money"
	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

// HubIslandID is Port Blair: every inter-island itinerary is assumed
// to enter and leave through it.
const HubIslandID = "PB"

// BuildVisitSequence turns the selected island set into the sequence
// of islands actually visited. With the hub present it is forced to
// the front and a closing leg back to it is appended; without the hub
// the supplied order is kept as-is.
func BuildVisitSequence(islandIDs []string) []string {
	if len(islandIDs) == 0 {
		return nil
	}

	hasHub := false
	for _, id := range islandIDs {
		if id == HubIslandID {
			hasHub = true
			break
		}
	}
	if !hasHub {
		seq := make([]string, len(islandIDs))
		copy(seq, islandIDs)
		return seq
	}

	seq := make([]string, 0, len(islandIDs)+1)
	seq = append(seq, HubIslandID)
	for _, id := range islandIDs {
		if id != HubIslandID {
			seq = append(seq, id)
		}
	}
	if seq[len(seq)-1] != HubIslandID {
		seq = append(seq, HubIslandID)
	}
	return seq
}

// EstimateFerryCost prices the whole visiting sequence for the given
// traveler count. A consecutive pair with no route contributes 0 —
// connectivity gaps are expected in sparse data, not errors.
func EstimateFerryCost(islandIDs []string, routes []refdata.FerryRoute, travelers int) float64 {
	seq := BuildVisitSequence(islandIDs)
	if len(seq) < 2 {
		return 0
	}
	if travelers < 1 {
		travelers = 1
	}

	total := 0.0
	for i := 0; i < len(seq)-1; i++ {
		route := FindRoute(routes, seq[i], seq[i+1])
		if route == nil {
			continue
		}
		total += MinOperatorFare(*route) * float64(travelers)
	}
	return money.SafeNum(total)
}

// FindRoute matches exact (origin, destination) first, then the
// reversed pair — routes are undirected in practice.
func FindRoute(routes []refdata.FerryRoute, from, to string) *refdata.FerryRoute {
	for i := range routes {
		if routes[i].OriginID == from && routes[i].DestinationID == to {
			return &routes[i]
		}
	}
	for i := range routes {
		if routes[i].OriginID == to && routes[i].DestinationID == from {
			return &routes[i]
		}
	}
	return nil
}

// MinOperatorFare is the cheapest positive per-person operator fare on
// a route; 0 when no operator has a usable fare.
func MinOperatorFare(route refdata.FerryRoute) float64 {
	best := 0.0
	for _, op := range route.Operators {
		fare := money.SafeNum(float64(op.SampleFareINR))
		if fare <= 0 {
			continue
		}
		if best == 0 || fare < best {
			best = fare
		}
	}
	return best
}
