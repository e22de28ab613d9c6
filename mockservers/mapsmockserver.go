package mockservers

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// canned mapping-provider payloads for test mode; the real provider is never
// called when MAPS_API_BASE_URL points here
func StartMapsApiServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/distancematrix/json", DistanceMatrixHandler)
	mux.HandleFunc("/maps/api/directions/json", DirectionsHandler)

	fmt.Println("Maps API mock server starting on port 8084")

	err := http.ListenAndServe(":8084", mux)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Maps API mock server")
	}
}

func DistanceMatrixHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	mode := r.URL.Query().Get("mode")

	// 12.4 km drive, same distance on foot at walking pace
	distanceMeters := 12400
	durationSeconds := 1500
	if mode == "walking" {
		durationSeconds = 9300
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	payload := fmt.Sprintf(`{"rows": [{"elements": [{"distance": {"value": %d}, "duration": {"value": %d}}]}]}`, distanceMeters, durationSeconds)
	_, err := w.Write([]byte(payload))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}

func DirectionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	payload := `{"routes": [{"legs": [{
		"distance": {"value": 13100},
		"duration": {"value": 2520},
		"steps": [
			{"travel_mode": "WALKING"},
			{"travel_mode": "TRANSIT", "transit_details": {"line": {"vehicle": {"type": "BUS"}}}},
			{"travel_mode": "TRANSIT", "transit_details": {"line": {"vehicle": {"type": "SUBWAY"}}}}
		]
	}]}]}`
	_, err := w.Write([]byte(payload))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
