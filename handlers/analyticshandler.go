package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"fleet-trip-server/db"
	"fleet-trip-server/internals"
	"fleet-trip-server/model"
)

type FleetAnalyticsResponse struct {
	Criteria model.FilterCriteria `json:"criteria"`
	Metrics  model.FleetMetrics   `json:"metrics"`
}

func HandleFleetAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	criteria, ok := readCriteria(w, r)
	if !ok {
		return
	}

	// read a snapshot of the trip log
	tripDAO := db.NewTripDAO(db.GetDB())
	trips, err := tripDAO.GetAllTrips()
	if err != nil {
		log.Println("Error reading trip log: ", err)
		http.Error(w, "Error reading trip log", http.StatusInternalServerError)
		return
	}

	// drop selections invalidated by an upstream filter change, then aggregate
	now := time.Now()
	criteria = internals.NormalizeCriteria(trips, criteria, now)
	metrics := internals.AggregateFleet(trips, criteria, now)

	// send response
	response := FleetAnalyticsResponse{
		Criteria: criteria,
		Metrics:  metrics,
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleFilterValues(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	criteria, ok := readCriteria(w, r)
	if !ok {
		return
	}

	tripDAO := db.NewTripDAO(db.GetDB())
	trips, err := tripDAO.GetAllTrips()
	if err != nil {
		log.Println("Error reading trip log: ", err)
		http.Error(w, "Error reading trip log", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	criteria = internals.NormalizeCriteria(trips, criteria, now)
	values := internals.AvailableFilterValues(trips, criteria, now)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(values)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func readCriteria(w http.ResponseWriter, r *http.Request) (model.FilterCriteria, bool) {
	period := r.URL.Query().Get("period")
	switch period {
	case model.PeriodToday, model.PeriodWeek, model.PeriodMonth, model.PeriodYear:
	default:
		log.Println("Wrong period value: ", period)
		http.Error(w, "The provided period is not valid", http.StatusBadRequest)
		return model.FilterCriteria{}, false
	}

	criteria := model.FilterCriteria{
		Period:       period,
		Department:   r.URL.Query().Get("department"),
		DriverID:     r.URL.Query().Get("driver_id"),
		VehicleModel: r.URL.Query().Get("vehicle_model"),
	}
	return criteria, true
}
