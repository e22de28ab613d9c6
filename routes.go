package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"fleet-trip-server/handlers"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/trips/options", handlers.HandleTripOptions)
	mux.HandleFunc("/trips", handlers.HandleConfirmTrip)

	mux.HandleFunc("/analytics", handlers.HandleFleetAnalytics)
	mux.HandleFunc("/analytics/filters", handlers.HandleFilterValues)

	mux.HandleFunc("/vehicles", handlers.HandleVehicles)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Server listening on port " + port)
	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
