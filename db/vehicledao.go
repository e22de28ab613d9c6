package db

import (
	"strings"

	"gorm.io/gorm"

	"fleet-trip-server/model"
)

// VehicleDAO reads the static vehicle catalog; profiles are reference data
// loaded at deployment time and never written here.
type VehicleDAO struct {
	db *gorm.DB
}

func NewVehicleDAO(db *gorm.DB) *VehicleDAO {
	return &VehicleDAO{db: db}
}

func (vehicleDAO *VehicleDAO) GetAllVehicles() ([]model.VehicleProfile, error) {
	var vehicles []model.VehicleProfile
	result := vehicleDAO.db.Order("id_vehicle").Find(&vehicles)
	if result.Error != nil {
		return nil, result.Error
	}
	return vehicles, nil
}

// GetVehicleByBrandAndModel looks a profile up by its "brand model" key,
// case-insensitive.
func (vehicleDAO *VehicleDAO) GetVehicleByBrandAndModel(brand, modelName string) (model.VehicleProfile, error) {
	var vehicle model.VehicleProfile
	result := vehicleDAO.db.
		Where("LOWER(brand) = ? AND LOWER(model) = ?", strings.ToLower(strings.TrimSpace(brand)), strings.ToLower(strings.TrimSpace(modelName))).
		First(&vehicle)
	return vehicle, result.Error
}
