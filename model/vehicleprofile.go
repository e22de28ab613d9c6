package model

import "strings"

// fuel types
const (
	FuelPetrol          = "petrol"
	FuelDiesel          = "diesel"
	FuelHybrid          = "hybrid"
	FuelPlugInHybrid    = "plugin_hybrid"
	FuelBatteryElectric = "battery_electric"
)

// market segments, used to key emission factors
const (
	SegmentSmall   = "small"
	SegmentMedium  = "medium"
	SegmentLarge   = "large"
	SegmentAverage = "average"
)

type VehicleProfile struct {
	VehicleID       int    `gorm:"column:id_vehicle;primaryKey;autoIncrement" json:"vehicle_id"`
	Brand           string `gorm:"column:brand;type:text;not null" json:"brand"`
	Model           string `gorm:"column:model;type:text;not null" json:"model"`
	FuelType        string `gorm:"column:fuel_type;type:text;not null" json:"fuel_type"`
	MarketSegment   string `gorm:"column:market_segment;type:text;not null" json:"market_segment"`
	EfficiencyLabel string `gorm:"column:efficiency;type:text;not null" json:"efficiency"`
}

func (VehicleProfile) TableName() string {
	return "vehicle_profile"
}

// CatalogKey returns the "brand model" lookup key, lowercase.
func (v VehicleProfile) CatalogKey() string {
	return strings.ToLower(strings.TrimSpace(v.Brand + " " + v.Model))
}

func (v VehicleProfile) IsEcoFriendly() bool {
	return v.FuelType == FuelHybrid || v.FuelType == FuelPlugInHybrid || v.FuelType == FuelBatteryElectric
}
