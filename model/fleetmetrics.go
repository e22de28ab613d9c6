package model

// qualitative ratings
const (
	RatingNoData    = "No Data"
	RatingLow       = "Low"
	RatingModerate  = "Moderate"
	RatingHigh      = "High"
	RatingGood      = "Good"
	RatingPoor      = "Poor"
	RatingExcellent = "Excellent"
	RatingVeryHigh  = "Very High"
)

// FleetMetrics is the aggregated summary of a filtered trip set. It has no
// lifecycle of its own: it is recomputed from a snapshot of the log on every
// request. An empty filtered set yields zero totals and "No Data" ratings,
// which is a distinct state from a non-empty set whose totals happen to be zero.
type FleetMetrics struct {
	TotalTrips           int     `json:"total_trips"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalFuelLiters      float64 `json:"total_fuel_liters"`
	TotalDurationSeconds int     `json:"total_duration_seconds"`
	TotalCostCZK         float64 `json:"total_cost_czk"`
	TotalCO2Kg           float64 `json:"total_co2_kg"`

	AvgFuelPer100Km  float64 `json:"avg_fuel_per_100km"`
	AvgCO2GramsPerKm float64 `json:"avg_co2_grams_per_km"`
	AvgSpeedKmh      float64 `json:"avg_speed_kmh"`
	CostPerKm        float64 `json:"cost_per_km"`
	TreesToOffset    int     `json:"trees_to_offset"`

	FuelEfficiencyRating  string `json:"fuel_efficiency_rating"`
	CarbonFootprintRating string `json:"carbon_footprint_rating"`
	EmissionLevel         string `json:"emission_level"`

	// trips whose fuel figure came from the parser fallback, not a measured label
	EstimatedConsumptionTrips int `json:"estimated_consumption_trips"`
}
