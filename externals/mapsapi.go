package externals

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"fleet-trip-server/model"
)

var mapsApiKey string
var mapsBaseURL string

// driving and walking directions

type DistanceMatrixResponse struct {
	Rows []Row `json:"rows"`
}
type Row struct {
	Elements []Element `json:"elements"`
}
type Element struct {
	Distance *Distance `json:"distance"`
	Duration *Duration `json:"duration"`
}
type Distance struct {
	Value int `json:"value"`
}
type Duration struct {
	Value int `json:"value"`
}

// transit directions

type DirectionsResponse struct {
	Routes []Route `json:"routes"`
}
type Route struct {
	Legs []Leg `json:"legs"`
}
type Leg struct {
	Distance *Distance `json:"distance"`
	Duration *Duration `json:"duration"`
	Steps    []Step    `json:"steps"`
}
type Step struct {
	TravelMode     string          `json:"travel_mode"`
	TransitDetails *TransitDetails `json:"transit_details"`
}
type TransitDetails struct {
	Line *TransitLine `json:"line"`
}
type TransitLine struct {
	Vehicle *Vehicle `json:"vehicle"`
}
type Vehicle struct {
	Type string `json:"type"`
}

func InitMapsApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	mapsApiKey = os.Getenv("MAPS_API_KEY")
	mapsBaseURL = os.Getenv("MAPS_API_BASE_URL")
	if mapsBaseURL == "" {
		mapsBaseURL = "https://maps.googleapis.com"
	}
}

// GetRouteLegDriving asks the mapping provider for one driving route.
func GetRouteLegDriving(origin, destination string) (model.RouteLeg, error) {
	return getDistanceMatrixLeg(origin, destination, "driving")
}

// GetRouteLegWalking asks the mapping provider for one walking route.
func GetRouteLegWalking(origin, destination string) (model.RouteLeg, error) {
	return getDistanceMatrixLeg(origin, destination, "walking")
}

func getDistanceMatrixLeg(origin, destination, mode string) (model.RouteLeg, error) {
	baseURL := mapsBaseURL + "/maps/api/distancematrix/json"

	params := url.Values{}
	params.Add("origins", origin)
	params.Add("destinations", destination)
	params.Add("mode", mode)
	params.Add("key", mapsApiKey)

	fullURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	resp, err := http.Get(fullURL)
	if err != nil {
		log.Println("error creating the request: ", err)
		return model.RouteLeg{}, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return model.RouteLeg{}, err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return model.RouteLeg{}, fmt.Errorf("HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response DistanceMatrixResponse
	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return model.RouteLeg{}, err
	}

	if len(response.Rows) == 0 ||
		len(response.Rows[0].Elements) == 0 ||
		response.Rows[0].Elements[0].Distance == nil ||
		response.Rows[0].Elements[0].Duration == nil {
		log.Println("Missing data in the response")
		return model.RouteLeg{}, fmt.Errorf("missing data in response")
	}

	element := response.Rows[0].Elements[0]
	return model.RouteLeg{
		DistanceKm:      float64(element.Distance.Value) / 1000,
		DurationSeconds: element.Duration.Value,
	}, nil
}

// GetRouteLegTransit asks the mapping provider for one public-transit route and
// collects the vehicle kinds it uses.
func GetRouteLegTransit(origin, destination string) (model.RouteLeg, error) {
	baseURL := mapsBaseURL + "/maps/api/directions/json"

	params := url.Values{}
	params.Add("origin", origin)
	params.Add("destination", destination)
	params.Add("mode", "transit")
	params.Add("alternatives", "false")
	params.Add("key", mapsApiKey)

	fullURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	resp, err := http.Get(fullURL)
	if err != nil {
		log.Println("error creating the request: ", err)
		return model.RouteLeg{}, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return model.RouteLeg{}, err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return model.RouteLeg{}, fmt.Errorf("HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	return decodeDirectionsTransit(body)
}

func decodeDirectionsTransit(body []byte) (model.RouteLeg, error) {
	var response DirectionsResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err := decoder.Decode(&response)
	if err != nil {
		log.Println("Error decoding json response: ", err)
		return model.RouteLeg{}, err
	}

	// check no missing data
	if len(response.Routes) == 0 ||
		len(response.Routes[0].Legs) == 0 ||
		response.Routes[0].Legs[0].Distance == nil ||
		response.Routes[0].Legs[0].Duration == nil {
		log.Println("Missing data in the response")
		return model.RouteLeg{}, fmt.Errorf("missing data in response")
	}

	apiLeg := response.Routes[0].Legs[0]
	leg := model.RouteLeg{
		DistanceKm:      float64(apiLeg.Distance.Value) / 1000,
		DurationSeconds: apiLeg.Duration.Value,
	}

	for _, step := range apiLeg.Steps {
		if step.TravelMode != "TRANSIT" {
			continue
		}
		if step.TransitDetails == nil ||
			step.TransitDetails.Line == nil ||
			step.TransitDetails.Line.Vehicle == nil {
			continue
		}
		leg.AddVehicleKind(normalizeVehicleKind(step.TransitDetails.Line.Vehicle.Type))
	}

	return leg, nil
}

// normalizeVehicleKind maps the provider's vehicle-type strings onto the kinds
// the fare rules know about; unrecognized types land in the generic transit
// bucket instead of being silently treated as something else.
func normalizeVehicleKind(apiType string) string {
	switch apiType {
	case "BUS", "INTERCITY_BUS", "SHARE_TAXI":
		return model.VehicleKindBus
	case "COMMUTER_TRAIN", "HEAVY_RAIL", "HIGH_SPEED_TRAIN", "LONG_DISTANCE_TRAIN", "RAIL", "MONORAIL":
		return model.VehicleKindTrain
	case "SUBWAY", "METRO_RAIL":
		return model.VehicleKindSubway
	case "TRAM":
		return model.VehicleKindTram
	case "TROLLEYBUS":
		return model.VehicleKindTrolley
	default:
		return model.VehicleKindTransit
	}
}
