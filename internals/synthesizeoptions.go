package internals

import (
	"fmt"

	"fleet-trip-server/model"
)

// shown when a cost or emission lookup misses
const unavailableLabel = "N/A"

// BuildTransportOptions produces one comparison record per travel mode for which
// the mapping provider returned a leg, in the fixed driving/transit/walking order.
func BuildTransportOptions(legsByMode map[string]model.RouteLeg, vehicle model.VehicleProfile) []model.TransportOption {
	var options []model.TransportOption
	for _, mode := range []string{model.ModeDriving, model.ModeTransit, model.ModeWalking} {
		leg, ok := legsByMode[mode]
		if !ok {
			continue
		}
		options = append(options, BuildTransportOption(mode, leg, vehicle))
	}
	return options
}

// BuildTransportOption is a pure mapping from (mode, leg, vehicle) to a
// TransportOption; selecting an option later has no side effect beyond keeping
// it around for trip confirmation.
func BuildTransportOption(mode string, leg model.RouteLeg, vehicle model.VehicleProfile) model.TransportOption {
	option := model.TransportOption{
		Mode:      mode,
		TimeLabel: FormatDuration(leg.DurationSeconds),
	}

	switch mode {
	case model.ModeDriving:
		cost, ok := ComputeCarTripCost(leg.DistanceKm, vehicle)
		if ok {
			option.CostLabel = FormatCost(cost)
		} else {
			option.CostLabel = unavailableLabel
		}
		emissions, ok := ComputeCarTripEmissions(leg.DistanceKm, vehicle.FuelType, vehicle.MarketSegment)
		if ok {
			option.EmissionLabel = FormatEmissions(emissions)
		} else {
			option.EmissionLabel = unavailableLabel
		}
		option.IsEcoFriendly = vehicle.IsEcoFriendly()
	case model.ModeTransit:
		fare := ComputeTransitFare(leg.DistanceKm, leg.DurationMinutes(), leg.TransitVehicleKinds)
		option.CostLabel = FormatCost(fare)
		option.EmissionLabel = FormatEmissions(ComputeTransitEmissions(leg.DistanceKm))
		option.IsEcoFriendly = true
	case model.ModeWalking:
		option.CostLabel = FormatCost(ComputeWalkingCost())
		option.EmissionLabel = FormatEmissions(ComputeWalkingEmissions())
		option.IsEcoFriendly = true
	}

	return option
}

// FormatDuration writes seconds as "2h", "45 min" or "1h 2 min"; the output must
// round-trip through ParseDurationSeconds.
func FormatDuration(seconds int) string {
	totalMinutes := seconds / 60
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours == 0 {
		return fmt.Sprintf("%d min", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %d min", hours, minutes)
}

func FormatCost(costCZK float64) string {
	return fmt.Sprintf("%.2f CZK", costCZK)
}

func FormatEmissions(kg float64) string {
	return fmt.Sprintf("%.1fkg CO₂", kg)
}

func FormatDistance(distanceKm float64) string {
	return fmt.Sprintf("%.1f km", distanceKm)
}
