package internals

import (
	"math"
	"time"

	"fleet-trip-server/model"
)

// one tree absorbs about 21 kg of CO2 per year; a policy constant, not a
// physical law
const co2KgPerTreePerYear = 21.0

// AggregateFleet folds the trips matching criteria into a FleetMetrics summary.
// It is a pure function of its inputs; now is passed explicitly so the period
// windows are reproducible. An empty filtered set returns zero totals and
// "No Data" ratings.
func AggregateFleet(trips []model.TripRecord, criteria model.FilterCriteria, now time.Time) model.FleetMetrics {
	filtered := FilterTrips(trips, criteria, now)
	if len(filtered) == 0 {
		return model.FleetMetrics{
			FuelEfficiencyRating:  model.RatingNoData,
			CarbonFootprintRating: model.RatingNoData,
			EmissionLevel:         model.RatingNoData,
		}
	}

	metrics := model.FleetMetrics{TotalTrips: len(filtered)}
	for _, trip := range filtered {
		distance := ParseDistanceKm(trip.Distance)
		metrics.TotalDistanceKm += distance
		metrics.TotalDurationSeconds += ParseDurationSeconds(trip.Duration)
		metrics.TotalCO2Kg += ParseCO2Kg(trip.CO2)
		metrics.TotalCostCZK += ParseCostCZK(trip.Cost)

		// per-trip consumption, not a fleet average
		consumption, fallback := ParseConsumption(trip.EfficiencyLabel)
		if fallback {
			metrics.EstimatedConsumptionTrips++
		}
		metrics.TotalFuelLiters += distance * consumption / 100
	}

	if metrics.TotalDistanceKm > 0 {
		metrics.AvgFuelPer100Km = metrics.TotalFuelLiters / metrics.TotalDistanceKm * 100
		metrics.AvgCO2GramsPerKm = metrics.TotalCO2Kg * 1000 / metrics.TotalDistanceKm
		metrics.CostPerKm = metrics.TotalCostCZK / metrics.TotalDistanceKm
	}
	if metrics.TotalDurationSeconds > 0 {
		metrics.AvgSpeedKmh = metrics.TotalDistanceKm / (float64(metrics.TotalDurationSeconds) / 3600)
	}
	metrics.TreesToOffset = int(math.Ceil(metrics.TotalCO2Kg / co2KgPerTreePerYear))

	metrics.CarbonFootprintRating = rateCarbonFootprint(metrics.TotalCO2Kg)
	metrics.FuelEfficiencyRating = rateFuelEfficiency(metrics.AvgFuelPer100Km)
	metrics.EmissionLevel = rateEmissionLevel(metrics.AvgCO2GramsPerKm)

	return metrics
}

// FilterTrips keeps the trips whose recorded timestamp falls inside the period
// window and whose department, driver and vehicle model match the non-empty
// criteria fields.
func FilterTrips(trips []model.TripRecord, criteria model.FilterCriteria, now time.Time) []model.TripRecord {
	var filtered []model.TripRecord
	for _, trip := range trips {
		if !inPeriod(trip.RecordedAt, criteria.Period, now) {
			continue
		}
		if criteria.Department != "" && trip.Department != criteria.Department {
			continue
		}
		if criteria.DriverID != "" && trip.DriverID != criteria.DriverID {
			continue
		}
		if criteria.VehicleModel != "" && trip.VehicleModel != criteria.VehicleModel {
			continue
		}
		filtered = append(filtered, trip)
	}
	return filtered
}

func inPeriod(recordedAt time.Time, period string, now time.Time) bool {
	switch period {
	case model.PeriodToday:
		y1, m1, d1 := recordedAt.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case model.PeriodWeek:
		// trailing 7 days through now, both ends inclusive
		return !recordedAt.Before(now.AddDate(0, 0, -7)) && !recordedAt.After(now)
	case model.PeriodMonth:
		return recordedAt.Year() == now.Year() && recordedAt.Month() == now.Month()
	case model.PeriodYear:
		return recordedAt.Year() == now.Year()
	default:
		// handlers validate the period, so only an empty one reaches this point;
		// it falls back to the widest window
		return recordedAt.Year() == now.Year()
	}
}

// AvailableFilterValues computes the dropdown lists for the current criteria:
// all departments in the period, driver ids scoped to the selected department,
// vehicle models scoped to the selected department and driver. Values keep
// first-appearance order.
func AvailableFilterValues(trips []model.TripRecord, criteria model.FilterCriteria, now time.Time) model.FilterValues {
	var values model.FilterValues
	for _, trip := range trips {
		if !inPeriod(trip.RecordedAt, criteria.Period, now) {
			continue
		}
		values.Departments = appendUnique(values.Departments, trip.Department)
		if criteria.Department != "" && trip.Department != criteria.Department {
			continue
		}
		values.DriverIDs = appendUnique(values.DriverIDs, trip.DriverID)
		if criteria.DriverID != "" && trip.DriverID != criteria.DriverID {
			continue
		}
		values.VehicleModels = appendUnique(values.VehicleModels, trip.VehicleModel)
	}
	return values
}

// NormalizeCriteria clears selections invalidated by an upstream filter change:
// a driver no longer present under the selected department is cleared together
// with the dependent vehicle-model selection, a vehicle model no longer present
// under the department and driver is cleared on its own.
func NormalizeCriteria(trips []model.TripRecord, criteria model.FilterCriteria, now time.Time) model.FilterCriteria {
	if criteria.DriverID != "" {
		values := AvailableFilterValues(trips, model.FilterCriteria{
			Period:     criteria.Period,
			Department: criteria.Department,
		}, now)
		if !containsValue(values.DriverIDs, criteria.DriverID) {
			criteria.DriverID = ""
			criteria.VehicleModel = ""
		}
	}

	if criteria.VehicleModel != "" {
		values := AvailableFilterValues(trips, model.FilterCriteria{
			Period:     criteria.Period,
			Department: criteria.Department,
			DriverID:   criteria.DriverID,
		}, now)
		if !containsValue(values.VehicleModels, criteria.VehicleModel) {
			criteria.VehicleModel = ""
		}
	}

	return criteria
}

func rateCarbonFootprint(totalCO2Kg float64) string {
	if totalCO2Kg < 100 {
		return model.RatingLow
	}
	if totalCO2Kg < 500 {
		return model.RatingModerate
	}
	return model.RatingHigh
}

func rateFuelEfficiency(avgFuelPer100Km float64) string {
	if avgFuelPer100Km <= 6 {
		return model.RatingGood
	}
	if avgFuelPer100Km <= 8 {
		return model.RatingModerate
	}
	return model.RatingPoor
}

func rateEmissionLevel(avgCO2GramsPerKm float64) string {
	switch {
	case avgCO2GramsPerKm <= 50:
		return model.RatingExcellent
	case avgCO2GramsPerKm <= 100:
		return model.RatingGood
	case avgCO2GramsPerKm <= 150:
		return model.RatingModerate
	case avgCO2GramsPerKm <= 200:
		return model.RatingHigh
	default:
		return model.RatingVeryHigh
	}
}

func appendUnique(values []string, value string) []string {
	if value == "" {
		return values
	}
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

func containsValue(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
