package internals

// transit emission [kg CO2 per km], one illustrative aggregate figure for all
// public-transport vehicles rather than a per-line model
const transitEmissionPerKm = 0.03

// ComputeCarTripEmissions returns the CO2 mass in kilograms for a car trip.
// The second result is false when the segment or fuel type is missing from the
// factor table; a false result must be shown as "N/A", never as a guessed value.
func ComputeCarTripEmissions(distanceKm float64, fuelType, marketSegment string) (float64, bool) {
	factor, ok := GetEmissionFactor(marketSegment, fuelType)
	if !ok {
		return 0, false
	}
	return factor * distanceKm, true
}

func ComputeTransitEmissions(distanceKm float64) float64 {
	return transitEmissionPerKm * distanceKm
}

func ComputeWalkingEmissions() float64 {
	return 0
}
