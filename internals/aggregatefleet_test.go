package internals

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-trip-server/model"
)

var aggregationNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func sampleTrips() []model.TripRecord {
	return []model.TripRecord{
		{
			DriverID:        "d-100",
			Department:      "sales",
			VehicleModel:    "Octavia",
			EfficiencyLabel: "6.5 l/100km",
			Distance:        "100.0 km",
			Duration:        "2h",
			CO2:             "15.5kg CO₂",
			Cost:            "252.85 CZK",
			RecordedAt:      aggregationNow.Add(-2 * time.Hour),
		},
		{
			DriverID:        "d-200",
			Department:      "operations",
			VehicleModel:    "Enyaq",
			EfficiencyLabel: "16.8 kWh/100km",
			Distance:        "50.0 km",
			Duration:        "1h",
			CO2:             "0.0kg CO₂",
			Cost:            "$5",
			RecordedAt:      aggregationNow.Add(-3 * time.Hour),
		},
	}
}

func TestAggregateFleetTotalsAndDerived(t *testing.T) {
	metrics := AggregateFleet(sampleTrips(), model.FilterCriteria{Period: model.PeriodToday}, aggregationNow)

	assert.Equal(t, 2, metrics.TotalTrips)
	assert.InDelta(t, 150.0, metrics.TotalDistanceKm, 0.001)
	assert.Equal(t, 10800, metrics.TotalDurationSeconds)
	assert.InDelta(t, 15.5, metrics.TotalCO2Kg, 0.001)
	// 252.85 + 5 * 23
	assert.InDelta(t, 367.85, metrics.TotalCostCZK, 0.001)
	// 100 * 6.5/100 measured + 50 * 7.0/100 fallback
	assert.InDelta(t, 10.0, metrics.TotalFuelLiters, 0.001)
	assert.Equal(t, 1, metrics.EstimatedConsumptionTrips)

	assert.InDelta(t, 6.6667, metrics.AvgFuelPer100Km, 0.001)
	assert.InDelta(t, 103.333, metrics.AvgCO2GramsPerKm, 0.001)
	assert.InDelta(t, 50.0, metrics.AvgSpeedKmh, 0.001)
	assert.InDelta(t, 367.85/150.0, metrics.CostPerKm, 0.001)
	assert.Equal(t, 1, metrics.TreesToOffset)

	assert.Equal(t, model.RatingLow, metrics.CarbonFootprintRating)
	assert.Equal(t, model.RatingModerate, metrics.FuelEfficiencyRating)
	assert.Equal(t, model.RatingModerate, metrics.EmissionLevel)
}

func TestAggregateFleetIdempotent(t *testing.T) {
	trips := sampleTrips()
	criteria := model.FilterCriteria{Period: model.PeriodToday}

	first := AggregateFleet(trips, criteria, aggregationNow)
	second := AggregateFleet(trips, criteria, aggregationNow)
	assert.Equal(t, first, second)
}

func TestAggregateFleetEmptySet(t *testing.T) {
	criteria := model.FilterCriteria{Period: model.PeriodToday, Department: "legal"}
	metrics := AggregateFleet(sampleTrips(), criteria, aggregationNow)

	assert.Equal(t, 0, metrics.TotalTrips)
	assert.Equal(t, 0.0, metrics.TotalDistanceKm)
	assert.Equal(t, 0.0, metrics.TotalCostCZK)
	assert.Equal(t, 0, metrics.TreesToOffset)

	// "No Data" is a distinct state, not merely zero
	assert.Equal(t, model.RatingNoData, metrics.FuelEfficiencyRating)
	assert.Equal(t, model.RatingNoData, metrics.CarbonFootprintRating)
	assert.Equal(t, model.RatingNoData, metrics.EmissionLevel)
}

func TestFilterTripsPeriodWindows(t *testing.T) {
	trips := []model.TripRecord{
		{DriverID: "a", RecordedAt: aggregationNow.Add(-1 * time.Hour)},
		{DriverID: "b", RecordedAt: aggregationNow.AddDate(0, 0, -3)},
		{DriverID: "c", RecordedAt: aggregationNow.AddDate(0, 0, -7)},
		{DriverID: "d", RecordedAt: aggregationNow.AddDate(0, 0, -8)},
		{DriverID: "e", RecordedAt: aggregationNow.AddDate(0, -2, 0)},
		{DriverID: "f", RecordedAt: aggregationNow.AddDate(-1, 0, 0)},
	}

	today := FilterTrips(trips, model.FilterCriteria{Period: model.PeriodToday}, aggregationNow)
	require.Len(t, today, 1)
	assert.Equal(t, "a", today[0].DriverID)

	// trailing 7 days, boundary inclusive
	week := FilterTrips(trips, model.FilterCriteria{Period: model.PeriodWeek}, aggregationNow)
	require.Len(t, week, 3)
	assert.Equal(t, "c", week[2].DriverID)

	month := FilterTrips(trips, model.FilterCriteria{Period: model.PeriodMonth}, aggregationNow)
	assert.Len(t, month, 4)

	year := FilterTrips(trips, model.FilterCriteria{Period: model.PeriodYear}, aggregationNow)
	assert.Len(t, year, 5)
}

func TestAggregateFleetEmissionLevelBoundaries(t *testing.T) {
	cases := []struct {
		co2Kg    float64
		expected string
	}{
		{5.0, model.RatingExcellent},  // 50.0 g/km
		{5.01, model.RatingGood},      // 50.1 g/km
		{20.0, model.RatingHigh},      // 200.0 g/km
		{20.01, model.RatingVeryHigh}, // 200.1 g/km
	}

	for _, c := range cases {
		trips := []model.TripRecord{{
			DriverID:        "d-1",
			Department:      "sales",
			EfficiencyLabel: "6.0 l/100km",
			Distance:        "100.0 km",
			Duration:        "1h",
			CO2:             fmt.Sprintf("%.2fkg CO₂", c.co2Kg),
			Cost:            "100 CZK",
			RecordedAt:      aggregationNow,
		}}
		metrics := AggregateFleet(trips, model.FilterCriteria{Period: model.PeriodToday}, aggregationNow)
		assert.Equal(t, c.expected, metrics.EmissionLevel, "co2 %.2f kg over 100 km", c.co2Kg)
	}
}

func TestRateFuelEfficiencyBoundaries(t *testing.T) {
	assert.Equal(t, model.RatingGood, rateFuelEfficiency(6.0))
	assert.Equal(t, model.RatingModerate, rateFuelEfficiency(6.1))
	assert.Equal(t, model.RatingModerate, rateFuelEfficiency(8.0))
	assert.Equal(t, model.RatingPoor, rateFuelEfficiency(8.1))
}

func TestRateCarbonFootprintBoundaries(t *testing.T) {
	assert.Equal(t, model.RatingLow, rateCarbonFootprint(99.9))
	assert.Equal(t, model.RatingModerate, rateCarbonFootprint(100))
	assert.Equal(t, model.RatingModerate, rateCarbonFootprint(499.9))
	assert.Equal(t, model.RatingHigh, rateCarbonFootprint(500))
}

func TestAvailableFilterValuesScoping(t *testing.T) {
	trips := []model.TripRecord{
		{Department: "sales", DriverID: "d-1", VehicleModel: "Octavia", RecordedAt: aggregationNow},
		{Department: "sales", DriverID: "d-2", VehicleModel: "Fabia", RecordedAt: aggregationNow},
		{Department: "operations", DriverID: "d-3", VehicleModel: "Enyaq", RecordedAt: aggregationNow},
	}

	// no department selected: all departments and drivers visible
	values := AvailableFilterValues(trips, model.FilterCriteria{Period: model.PeriodToday}, aggregationNow)
	assert.Equal(t, []string{"sales", "operations"}, values.Departments)
	assert.Equal(t, []string{"d-1", "d-2", "d-3"}, values.DriverIDs)

	// department selected: drivers and models narrow, departments stay complete
	values = AvailableFilterValues(trips, model.FilterCriteria{Period: model.PeriodToday, Department: "sales"}, aggregationNow)
	assert.Equal(t, []string{"sales", "operations"}, values.Departments)
	assert.Equal(t, []string{"d-1", "d-2"}, values.DriverIDs)
	assert.Equal(t, []string{"Octavia", "Fabia"}, values.VehicleModels)

	// driver selected too: models narrow further
	values = AvailableFilterValues(trips, model.FilterCriteria{Period: model.PeriodToday, Department: "sales", DriverID: "d-2"}, aggregationNow)
	assert.Equal(t, []string{"Fabia"}, values.VehicleModels)
}

func TestNormalizeCriteriaCrossFilterReset(t *testing.T) {
	trips := []model.TripRecord{
		{Department: "sales", DriverID: "d-1", VehicleModel: "Octavia", RecordedAt: aggregationNow},
		{Department: "operations", DriverID: "d-3", VehicleModel: "Enyaq", RecordedAt: aggregationNow},
	}

	// the department change excludes the selected driver: driver and the
	// dependent vehicle model are cleared
	criteria := model.FilterCriteria{
		Period:       model.PeriodToday,
		Department:   "operations",
		DriverID:     "d-1",
		VehicleModel: "Octavia",
	}
	normalized := NormalizeCriteria(trips, criteria, aggregationNow)
	assert.Equal(t, "operations", normalized.Department)
	assert.Empty(t, normalized.DriverID)
	assert.Empty(t, normalized.VehicleModel)

	// a still-valid selection is left alone
	criteria = model.FilterCriteria{
		Period:       model.PeriodToday,
		Department:   "sales",
		DriverID:     "d-1",
		VehicleModel: "Octavia",
	}
	assert.Equal(t, criteria, NormalizeCriteria(trips, criteria, aggregationNow))
}

func TestAggregateFleetMalformedRecords(t *testing.T) {
	trips := sampleTrips()
	trips = append(trips, model.TripRecord{
		DriverID:   "d-300",
		Department: "sales",
		Distance:   "unknown",
		Duration:   "soon",
		CO2:        "N/A",
		Cost:       "free",
		RecordedAt: aggregationNow,
	})

	// a malformed record degrades to zeros, it never aborts the aggregation
	metrics := AggregateFleet(trips, model.FilterCriteria{Period: model.PeriodToday}, aggregationNow)
	assert.Equal(t, 3, metrics.TotalTrips)
	assert.InDelta(t, 150.0, metrics.TotalDistanceKm, 0.001)
	assert.InDelta(t, 367.85, metrics.TotalCostCZK, 0.001)
}
