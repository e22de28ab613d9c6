package model

import "time"

// TripRecord is one confirmed trip in the fleet log. Distance, duration, co2 and
// cost are stored as the display-formatted strings written at confirmation time,
// for compatibility with the existing log format; the parsers in internals turn
// them back into numbers for aggregation. Records are append-only.
type TripRecord struct {
	TripID          int       `gorm:"column:id_trip;primaryKey;autoIncrement" json:"trip_id"`
	TripUID         string    `gorm:"column:trip_uid;type:text;not null" json:"trip_uid"`
	DriverID        string    `gorm:"column:driver_id;type:text;not null" json:"driver_id"`
	Department      string    `gorm:"column:department;type:text;not null" json:"department"`
	VehicleBrand    string    `gorm:"column:vehicle_brand;type:text;not null" json:"vehicle_brand"`
	VehicleModel    string    `gorm:"column:vehicle_model;type:text;not null" json:"vehicle_model"`
	FuelType        string    `gorm:"column:fuel_type;type:text;not null" json:"fuel_type"`
	MarketSegment   string    `gorm:"column:market_segment;type:text;not null" json:"market_segment"`
	EfficiencyLabel string    `gorm:"column:efficiency;type:text;not null" json:"efficiency"`
	Distance        string    `gorm:"column:distance;type:text;not null" json:"distance"`
	Duration        string    `gorm:"column:duration;type:text;not null" json:"duration"`
	CO2             string    `gorm:"column:co2;type:text;not null" json:"co2"`
	Cost            string    `gorm:"column:cost;type:text;not null" json:"cost"`
	Mode            string    `gorm:"column:mode;type:text;not null" json:"mode"`
	Origin          string    `gorm:"column:origin;type:text;not null" json:"origin"`
	Destination     string    `gorm:"column:destination;type:text;not null" json:"destination"`
	ScheduledAt     time.Time `gorm:"column:scheduled_at;type:timestamptz;not null" json:"scheduled_at"`
	RecordedAt      time.Time `gorm:"column:recorded_at;type:timestamptz;not null" json:"recorded_at"`
}

func (TripRecord) TableName() string {
	return "trip_record"
}
