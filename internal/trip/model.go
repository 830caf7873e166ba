package trip

import "github.com/fishhunter29/andaman-planner-v3/internal/pricing"

// EstimateRequest is the selection state posted by the planner UI.
type EstimateRequest struct {
	IslandIDs   []string            `json:"island_ids"`
	LocationIDs []string            `json:"location_ids"`
	ActivityIDs []string            `json:"activity_ids"`
	HotelNights map[string]int      `json:"hotel_nights"`
	CabHires    []pricing.CabHire   `json:"cab_hires"`
	CabLegs     []pricing.CabLegUse `json:"cab_legs"`
	Adults      int                 `json:"adults"`
	Children    int                 `json:"children"`
	Nights      int                 `json:"nights"`
}

// EstimateResponse wraps the breakdown with a quote id and currency.
type EstimateResponse struct {
	EstimateID string            `json:"estimate_id"`
	Currency   string            `json:"currency"`
	Travelers  int               `json:"travelers"`
	Breakdown  pricing.Breakdown `json:"breakdown"`
}
