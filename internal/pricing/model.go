package pricing

// CabHire is one flat daily-hire row (daily_hire mode).
type CabHire struct {
	IslandID     string `json:"island_id"`
	VehicleClass string `json:"vehicle_class"`
	Days         int    `json:"days"`
}

// CabLegUse is one priced itinerary leg (itinerary_legs mode).
type CabLegUse struct {
	LegID     string `json:"leg_id"`
	TimeOfDay string `json:"time_of_day"` // "day" or "night"
	Count     int    `json:"count"`
}

// Selections is the caller-owned selection state. The core never
// mutates it and keeps no session state of its own between calls.
type Selections struct {
	IslandIDs   []string       `json:"island_ids"`
	LocationIDs []string       `json:"location_ids"`
	ActivityIDs []string       `json:"activity_ids"`
	HotelNights map[string]int `json:"hotel_nights"`
	CabHires    []CabHire      `json:"cab_hires"`
	CabLegs     []CabLegUse    `json:"cab_legs"`
	Adults      int            `json:"adults"`
	Children    int            `json:"children"`
	Nights      int            `json:"nights"`
}

// Travelers is the party size used for per-person pricing, never
// below 1.
func (s Selections) Travelers() int {
	n := s.Adults + s.Children
	if n < 1 {
		return 1
	}
	return n
}

// Line is one priced item inside a category. Unavailable prices show
// up as zero-amount lines with a note, not as missing entries.
type Line struct {
	Label      string  `json:"label"`
	Qty        float64 `json:"qty"`
	UnitAmount float64 `json:"unit_amount"`
	Total      float64 `json:"total"`
	Note       string  `json:"note,omitempty"`
}

// Category is a per-category subtotal with its line items.
type Category struct {
	Total float64 `json:"total"`
	Lines []Line  `json:"lines"`
}

// Breakdown is the full cost estimate handed to the presentation
// layer.
type Breakdown struct {
	Hotels     Category `json:"hotels"`
	Cabs       Category `json:"cabs"`
	Activities Category `json:"activities"`
	Ferries    Category `json:"ferries"`
	Subtotal   float64  `json:"subtotal"`
	Tax        float64  `json:"tax"`
	ServiceFee float64  `json:"service_fee"`
	GrandTotal float64  `json:"grand_total"`
	PerPerson  float64  `json:"per_person"`
}
