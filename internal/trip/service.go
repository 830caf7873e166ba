package trip

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fishhunter29/andaman-planner-v3/internal/catalog"
	"github.com/fishhunter29/andaman-planner-v3/internal/fares"
	"github.com/fishhunter29/andaman-planner-v3/internal/pricing"
	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
)

// Service holds the loaded reference tables and their indexes.
// Tables are immutable for the process lifetime, so indexes are built
// once and every estimate is a pure function over them.
type Service struct {
	tables *refdata.Tables
	ix     *catalog.Indexes
}

func NewService(ctx context.Context, repo refdata.Repository) (*Service, error) {
	if repo == nil {
		return nil, errors.New("nil dataset repository")
	}

	tables, err := repo.LoadTables(ctx)
	if err != nil {
		return nil, err
	}

	return &Service{
		tables: tables,
		ix:     catalog.BuildIndexes(tables),
	}, nil
}

func (s *Service) Islands() []refdata.Island {
	return s.tables.Islands
}

// Locations filters and sorts the catalog for the UI.
func (s *Service) Locations(criteria catalog.FilterCriteria, sortMode string) []refdata.Location {
	filtered := s.ix.FilterLocations(s.tables.Locations, criteria)
	return s.ix.SortLocations(filtered, sortMode)
}

// Activities lists activities, optionally only those operated on one
// island.
func (s *Service) Activities(islandID string) []refdata.Activity {
	if islandID == "" {
		return s.tables.Activities
	}

	out := make([]refdata.Activity, 0, len(s.tables.Activities))
	for _, act := range s.tables.Activities {
		for _, id := range act.OperatedIn {
			if id == islandID {
				out = append(out, act)
				break
			}
		}
	}
	return out
}

// Hotels lists hotels, optionally for one island, preserving dataset
// order.
func (s *Service) Hotels(islandID string) []refdata.Hotel {
	if islandID == "" {
		return s.tables.Hotels
	}
	return s.ix.HotelsByIsland[islandID]
}

// LocationActivities resolves the activities offered at a location.
func (s *Service) LocationActivities(locationID string) []refdata.Activity {
	ids := s.ix.LocationToActivityIDs[locationID]
	out := make([]refdata.Activity, 0, len(ids))
	for _, id := range ids {
		if act, ok := s.ix.ActivityByID[id]; ok {
			out = append(out, act)
		}
	}
	return out
}

// Estimate prices the posted selection state.
func (s *Service) Estimate(req EstimateRequest) EstimateResponse {
	sel := pricing.Selections{
		IslandIDs:   req.IslandIDs,
		LocationIDs: req.LocationIDs,
		ActivityIDs: req.ActivityIDs,
		HotelNights: req.HotelNights,
		CabHires:    req.CabHires,
		CabLegs:     req.CabLegs,
		Adults:      req.Adults,
		Children:    req.Children,
		Nights:      req.Nights,
	}

	breakdown := pricing.ComputeTripCost(sel, s.ix, s.tables.Pricing)

	return EstimateResponse{
		EstimateID: uuid.New().String(),
		Currency:   s.tables.Pricing.Currency,
		Travelers:  sel.Travelers(),
		Breakdown:  breakdown,
	}
}

// FindCabLeg exposes the relaxation matcher directly (ops aid).
func (s *Service) FindCabLeg(req fares.LegRequest) *refdata.CabLeg {
	return fares.FindCabLeg(s.tables.CabLegs, req)
}
