package internals

import "fleet-trip-server/model"

// fuel price [CZK per liter; CZK per kWh for battery electric]
var fuelPriceTable = map[string]float64{
	model.FuelPetrol:          38.9,
	model.FuelDiesel:          36.5,
	model.FuelHybrid:          38.9,
	model.FuelPlugInHybrid:    38.9,
	model.FuelBatteryElectric: 7.3,
}

// emission factor [kg CO2 per km], keyed by market segment and fuel type;
// battery electric is tailpipe-only, so exactly 0 for every segment
var emissionFactorTable = map[string]map[string]float64{
	model.SegmentSmall: {
		model.FuelPetrol:          0.120,
		model.FuelDiesel:          0.110,
		model.FuelHybrid:          0.090,
		model.FuelPlugInHybrid:    0.060,
		model.FuelBatteryElectric: 0,
	},
	model.SegmentMedium: {
		model.FuelPetrol:          0.155,
		model.FuelDiesel:          0.140,
		model.FuelHybrid:          0.110,
		model.FuelPlugInHybrid:    0.075,
		model.FuelBatteryElectric: 0,
	},
	model.SegmentLarge: {
		model.FuelPetrol:          0.200,
		model.FuelDiesel:          0.180,
		model.FuelHybrid:          0.140,
		model.FuelPlugInHybrid:    0.095,
		model.FuelBatteryElectric: 0,
	},
	model.SegmentAverage: {
		model.FuelPetrol:          0.160,
		model.FuelDiesel:          0.145,
		model.FuelHybrid:          0.115,
		model.FuelPlugInHybrid:    0.080,
		model.FuelBatteryElectric: 0,
	},
}

// GetFuelPrice resolves the unit price for a fuel type. A miss is reported,
// never replaced with a zero price.
func GetFuelPrice(fuelType string) (float64, bool) {
	price, ok := fuelPriceTable[fuelType]
	return price, ok
}

// GetEmissionFactor resolves the kg CO2 per km factor for a segment and fuel type.
func GetEmissionFactor(marketSegment, fuelType string) (float64, bool) {
	segmentFactors, ok := emissionFactorTable[marketSegment]
	if !ok {
		return 0, false
	}
	factor, ok := segmentFactors[fuelType]
	return factor, ok
}
