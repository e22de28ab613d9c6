package model

// TransportOption is the per-mode comparison record shown next to a route search.
// It is recomputed whenever the active vehicle or the route legs change and is
// never persisted as such.
type TransportOption struct {
	Mode          string `json:"mode"`
	TimeLabel     string `json:"time_label"`
	CostLabel     string `json:"cost_label"`
	EmissionLabel string `json:"emission_label"`
	IsEcoFriendly bool   `json:"is_eco_friendly"`
}
