package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-trip-server/model"
)

// TripDAO is the append-only access to the fleet trip log: records are created
// once at confirmation time and never updated or deleted here.
type TripDAO struct {
	db *gorm.DB
}

func NewTripDAO(db *gorm.DB) *TripDAO {
	return &TripDAO{db: db}
}

// CreateTrip appends one record to the log, assigning the server-side trip uid
// and recorded timestamp.
func (tripDAO *TripDAO) CreateTrip(trip *model.TripRecord) error {
	trip.TripUID = uuid.NewString()
	trip.RecordedAt = time.Now()

	result := tripDAO.db.Create(trip)
	return result.Error
}

// GetAllTrips reads a snapshot of the log in insertion order.
func (tripDAO *TripDAO) GetAllTrips() ([]model.TripRecord, error) {
	var trips []model.TripRecord
	result := tripDAO.db.Order("id_trip").Find(&trips)
	if result.Error != nil {
		return nil, result.Error
	}
	return trips, nil
}

func (tripDAO *TripDAO) GetTripsByDriverId(driverID string) ([]model.TripRecord, error) {
	var trips []model.TripRecord
	result := tripDAO.db.Where("driver_id = ?", driverID).Order("id_trip").Find(&trips)
	if result.Error != nil {
		return nil, result.Error
	}
	return trips, nil
}
