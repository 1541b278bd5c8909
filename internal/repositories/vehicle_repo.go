package repositories

import (
	"rentwheels/internal/models"
)

// VehicleRepository defines the interface for vehicle listing data access.
type VehicleRepository interface {
	List(query models.VehicleQuery) ([]models.Vehicle, error)
	GetByID(id string) (*models.Vehicle, error)
	GetByIDs(ids []string) (map[string]models.Vehicle, error)
	Create(vehicle *models.Vehicle) error
	Update(id string, fields map[string]interface{}) (int64, error)
	Delete(id string) (int64, error)
}
