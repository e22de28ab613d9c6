package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddVehicleKindDeduplicates(t *testing.T) {
	leg := RouteLeg{}
	leg.AddVehicleKind(VehicleKindBus)
	leg.AddVehicleKind(VehicleKindSubway)
	leg.AddVehicleKind(VehicleKindBus)

	assert.Equal(t, []string{VehicleKindBus, VehicleKindSubway}, leg.TransitVehicleKinds)
}

func TestHasRailService(t *testing.T) {
	assert.False(t, RouteLeg{TransitVehicleKinds: []string{VehicleKindBus, VehicleKindTrolley}}.HasRailService())
	assert.False(t, RouteLeg{TransitVehicleKinds: []string{VehicleKindTransit}}.HasRailService())
	assert.False(t, RouteLeg{}.HasRailService())

	assert.True(t, RouteLeg{TransitVehicleKinds: []string{VehicleKindTrain}}.HasRailService())
	assert.True(t, RouteLeg{TransitVehicleKinds: []string{VehicleKindBus, VehicleKindSubway}}.HasRailService())
	assert.True(t, RouteLeg{TransitVehicleKinds: []string{VehicleKindTram}}.HasRailService())
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 62, RouteLeg{DurationSeconds: 3720}.DurationMinutes())
	assert.Equal(t, 0, RouteLeg{DurationSeconds: 59}.DurationMinutes())
}
