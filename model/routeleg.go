package model

// travel modes
const (
	ModeDriving = "driving"
	ModeTransit = "transit"
	ModeWalking = "walking"
)

// transit vehicle kinds
const (
	VehicleKindBus     = "bus"
	VehicleKindTrain   = "train"
	VehicleKindSubway  = "subway"
	VehicleKindTram    = "tram"
	VehicleKindTrolley = "trolley"
	VehicleKindTransit = "transit"
)

// RouteLeg is one route computed by the mapping provider for a single travel mode.
type RouteLeg struct {
	DistanceKm          float64  `json:"distance_km"`
	DurationSeconds     int      `json:"duration_seconds"`
	TransitVehicleKinds []string `json:"transit_vehicle_kinds,omitempty"`
}

// AddVehicleKind keeps first-appearance order and skips duplicates.
func (leg *RouteLeg) AddVehicleKind(kind string) {
	for _, k := range leg.TransitVehicleKinds {
		if k == kind {
			return
		}
	}
	leg.TransitVehicleKinds = append(leg.TransitVehicleKinds, kind)
}

// HasRailService reports whether any leg vehicle runs on rails.
func (leg RouteLeg) HasRailService() bool {
	for _, k := range leg.TransitVehicleKinds {
		if k == VehicleKindTrain || k == VehicleKindSubway || k == VehicleKindTram {
			return true
		}
	}
	return false
}

func (leg RouteLeg) DurationMinutes() int {
	return leg.DurationSeconds / 60
}
