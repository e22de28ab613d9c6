package internals

import (
	"math"

	"fleet-trip-server/model"
)

// flat per-km rail fare [CZK/km]
const railFarePerKm = 1.5

// duration-tier transit fares [CZK]
const (
	shortTransitFare  = 30.0
	mediumTransitFare = 40.0
	longTransitFare   = 120.0
)

// ComputeCarTripCost returns the fuel cost of driving distanceKm with the given
// vehicle, rounded to 2 decimal places. The second result is false when the fuel
// price is unknown, the efficiency label does not parse, or the distance is not
// positive; a false result must be shown as unavailable, never as a zero cost.
func ComputeCarTripCost(distanceKm float64, vehicle model.VehicleProfile) (float64, bool) {
	if distanceKm <= 0 {
		return 0, false
	}

	unitPrice, ok := GetFuelPrice(vehicle.FuelType)
	if !ok {
		return 0, false
	}

	efficiencyPer100Km, ok := ParseEfficiency(vehicle.EfficiencyLabel)
	if !ok {
		return 0, false
	}

	cost := distanceKm * (efficiencyPer100Km / 100) * unitPrice
	return math.Round(cost*100) / 100, true
}

// ComputeTransitFare prices a public-transit leg. Rail service is priced per km
// and takes priority over the duration tiers regardless of duration. The tier
// boundaries are <30, <=90, else; 30 and 90 minutes are boundary-sensitive.
func ComputeTransitFare(distanceKm float64, durationMinutes int, vehicleKinds []string) float64 {
	leg := model.RouteLeg{TransitVehicleKinds: vehicleKinds}
	if leg.HasRailService() {
		return math.Round(distanceKm * railFarePerKm)
	}

	if durationMinutes < 30 {
		return shortTransitFare
	}
	if durationMinutes <= 90 {
		return mediumTransitFare
	}
	return longTransitFare
}

// ComputeWalkingCost is always zero. Walking never goes through the car or
// transit pricing paths.
func ComputeWalkingCost() float64 {
	return 0
}
