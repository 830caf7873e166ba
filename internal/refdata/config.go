package refdata

// Cab pricing modes. daily_hire prices flat per-day vehicle hire from
// the aggregated median rate table; itinerary_legs prices individual
// point-to-point legs. The two modes read different source tables and
// are never merged.
const (
	CabModeDailyHire     = "daily_hire"
	CabModeItineraryLegs = "itinerary_legs"
)

// PricingConfig is loaded once per process from the dataset. Markups
// are margins, not business rules — the dataset may override any of
// them. Zero-valued fields get defaults via ApplyDefaults.
type PricingConfig struct {
	Currency             string  `json:"currency"`
	TaxPercent           float64 `json:"tax_percent"`
	ServiceFeeINR        INR     `json:"service_fee_inr"`
	CabPerDayBaseINR     INR     `json:"cab_per_day_base_inr"`
	MinCabFareMultiplier float64 `json:"min_cab_fare_multiplier"`
	CabMarkup            float64 `json:"cab_markup"`
	HotelMarkup          float64 `json:"hotel_markup"`
	ActivityMarkup       float64 `json:"activity_markup"`
	CabPricingMode       string  `json:"cab_pricing_mode"`
}

// ApplyDefaults fills absent fields. Absent and explicit-zero are the
// same for markups and tax; a dataset wanting to suppress one ships a
// tiny non-zero value instead.
func (c PricingConfig) ApplyDefaults() PricingConfig {
	if c.Currency == "" {
		c.Currency = "INR"
	}
	if c.TaxPercent == 0 {
		c.TaxPercent = 18
	}
	if c.MinCabFareMultiplier <= 0 {
		c.MinCabFareMultiplier = 1
	}
	if c.CabMarkup == 0 {
		c.CabMarkup = 0.10
	}
	if c.HotelMarkup == 0 {
		c.HotelMarkup = 0.20
	}
	if c.ActivityMarkup == 0 {
		c.ActivityMarkup = 0.15
	}
	if c.CabPricingMode != CabModeItineraryLegs {
		c.CabPricingMode = CabModeDailyHire
	}
	return c
}
