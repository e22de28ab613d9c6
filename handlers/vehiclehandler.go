package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"fleet-trip-server/db"
	"fleet-trip-server/model"
)

type VehicleCatalogResponse struct {
	Vehicles []model.VehicleProfile `json:"vehicles"`
}

func HandleVehicles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		listVehicles(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicleDAO := db.NewVehicleDAO(db.GetDB())
	vehicles, err := vehicleDAO.GetAllVehicles()
	if err != nil {
		log.Println("Error reading vehicle catalog: ", err)
		http.Error(w, "Error reading vehicle catalog", http.StatusInternalServerError)
		return
	}

	response := VehicleCatalogResponse{
		Vehicles: vehicles,
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}
