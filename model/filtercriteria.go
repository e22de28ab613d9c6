package model

// analytics periods
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// FilterCriteria selects the slice of the trip log an analytics session looks at.
// Empty department, driver and vehicle model mean "all".
type FilterCriteria struct {
	Period       string `json:"period"`
	Department   string `json:"department"`
	DriverID     string `json:"driver_id"`
	VehicleModel string `json:"vehicle_model"`
}

// FilterValues lists the selections still available given the current criteria:
// driver ids are scoped to the selected department, vehicle models to the
// selected department and driver.
type FilterValues struct {
	Departments   []string `json:"departments"`
	DriverIDs     []string `json:"driver_ids"`
	VehicleModels []string `json:"vehicle_models"`
}
