package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"fleet-trip-server/db"
	"fleet-trip-server/externals"
	"fleet-trip-server/internals"
	"fleet-trip-server/model"
)

type TripOptionsResponse struct {
	Options []model.TransportOption `json:"options"`
}

type ConfirmTripRequest struct {
	DriverID            string    `json:"driver_id"`
	Department          string    `json:"department"`
	Brand               string    `json:"brand"`
	Model               string    `json:"model"`
	Mode                string    `json:"mode"`
	Origin              string    `json:"origin"`
	Destination         string    `json:"destination"`
	ScheduledAt         time.Time `json:"scheduled_at"`
	DistanceKm          float64   `json:"distance_km"`
	DurationSeconds     int       `json:"duration_seconds"`
	TransitVehicleKinds []string  `json:"transit_vehicle_kinds"`
}

func HandleTripOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	// get request parameters

	origin := r.URL.Query().Get("origin")
	if origin == "" {
		log.Println("Missing origin")
		http.Error(w, "Missing origin", http.StatusBadRequest)
		return
	}
	destination := r.URL.Query().Get("destination")
	if destination == "" {
		log.Println("Missing destination")
		http.Error(w, "Missing destination", http.StatusBadRequest)
		return
	}

	brand := r.URL.Query().Get("brand")
	modelName := r.URL.Query().Get("model")
	if brand == "" || modelName == "" {
		log.Println("Missing vehicle brand or model")
		http.Error(w, "Missing vehicle brand or model", http.StatusBadRequest)
		return
	}

	// get active vehicle
	vehicleDAO := db.NewVehicleDAO(db.GetDB())
	vehicle, err := vehicleDAO.GetVehicleByBrandAndModel(brand, modelName)
	if err != nil {
		log.Println("Vehicle not found: ", err)
		http.Error(w, "Vehicle not found", http.StatusBadRequest)
		return
	}

	// call the mapping provider and synthesize the options
	legsByMode := fetchRouteLegs(origin, destination)
	options := internals.BuildTransportOptions(legsByMode, vehicle)

	// build response
	response := TripOptionsResponse{
		Options: options,
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

// fetchRouteLegs asks the mapping provider for one leg per travel mode; a
// provider failure for one mode drops that mode, not the whole search.
func fetchRouteLegs(origin, destination string) map[string]model.RouteLeg {
	legsByMode := make(map[string]model.RouteLeg)

	// driving data
	legDriving, err := externals.GetRouteLegDriving(origin, destination)
	if err == nil {
		legsByMode[model.ModeDriving] = legDriving
	} else {
		log.Println("No driving route: ", err)
	}

	// transit data
	legTransit, err := externals.GetRouteLegTransit(origin, destination)
	if err == nil {
		legsByMode[model.ModeTransit] = legTransit
	} else {
		log.Println("No transit route: ", err)
	}

	// walking data
	legWalking, err := externals.GetRouteLegWalking(origin, destination)
	if err == nil {
		legsByMode[model.ModeWalking] = legWalking
	} else {
		log.Println("No walking route: ", err)
	}

	return legsByMode
}

func HandleConfirmTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var request ConfirmTripRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error decoding JSON: ", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if request.DriverID == "" || request.Department == "" {
		log.Println("Missing driver id or department")
		http.Error(w, "Missing driver id or department", http.StatusBadRequest)
		return
	}
	if request.Mode != model.ModeDriving && request.Mode != model.ModeTransit && request.Mode != model.ModeWalking {
		log.Println("Unknown travel mode: ", request.Mode)
		http.Error(w, "Unknown travel mode", http.StatusBadRequest)
		return
	}

	// get active vehicle
	vehicleDAO := db.NewVehicleDAO(db.GetDB())
	vehicle, err := vehicleDAO.GetVehicleByBrandAndModel(request.Brand, request.Model)
	if err != nil {
		log.Println("Vehicle not found: ", err)
		http.Error(w, "Vehicle not found", http.StatusBadRequest)
		return
	}

	// recompute the chosen option server side so the persisted labels match the
	// engine, not whatever the client rendered
	leg := model.RouteLeg{
		DistanceKm:      request.DistanceKm,
		DurationSeconds: request.DurationSeconds,
	}
	for _, kind := range request.TransitVehicleKinds {
		leg.AddVehicleKind(kind)
	}
	option := internals.BuildTransportOption(request.Mode, leg, vehicle)

	trip := model.TripRecord{
		DriverID:        request.DriverID,
		Department:      request.Department,
		VehicleBrand:    vehicle.Brand,
		VehicleModel:    vehicle.Model,
		FuelType:        vehicle.FuelType,
		MarketSegment:   vehicle.MarketSegment,
		EfficiencyLabel: vehicle.EfficiencyLabel,
		Distance:        internals.FormatDistance(leg.DistanceKm),
		Duration:        option.TimeLabel,
		CO2:             option.EmissionLabel,
		Cost:            option.CostLabel,
		Mode:            request.Mode,
		Origin:          request.Origin,
		Destination:     request.Destination,
		ScheduledAt:     request.ScheduledAt,
	}

	// a failed append is the one hard failure: the caller keeps its selection
	// and can retry
	tripDAO := db.NewTripDAO(db.GetDB())
	err = tripDAO.CreateTrip(&trip)
	if err != nil {
		log.Println("Error creating trip record: ", err)
		http.Error(w, "Error creating trip record", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(trip)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}
