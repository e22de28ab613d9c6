package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogKey(t *testing.T) {
	vehicle := VehicleProfile{Brand: "Skoda", Model: "Octavia"}
	assert.Equal(t, "skoda octavia", vehicle.CatalogKey())

	shouty := VehicleProfile{Brand: "SKODA", Model: "OCTAVIA"}
	assert.Equal(t, vehicle.CatalogKey(), shouty.CatalogKey())
}

func TestIsEcoFriendly(t *testing.T) {
	assert.True(t, VehicleProfile{FuelType: FuelHybrid}.IsEcoFriendly())
	assert.True(t, VehicleProfile{FuelType: FuelPlugInHybrid}.IsEcoFriendly())
	assert.True(t, VehicleProfile{FuelType: FuelBatteryElectric}.IsEcoFriendly())

	assert.False(t, VehicleProfile{FuelType: FuelPetrol}.IsEcoFriendly())
	assert.False(t, VehicleProfile{FuelType: FuelDiesel}.IsEcoFriendly())
}
