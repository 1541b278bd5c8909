package repositories

import (
	"errors"
	"fmt"
	"strings"

	"rentwheels/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMVehicleRepository is a GORM implementation of VehicleRepository.
type GORMVehicleRepository struct {
	db *gorm.DB
}

// NewGORMVehicleRepository creates a new instance of GORMVehicleRepository.
func NewGORMVehicleRepository(db *gorm.DB) *GORMVehicleRepository {
	return &GORMVehicleRepository{
		db: db,
	}
}

// List retrieves vehicles matching the query. Filters are applied as a
// conjunction; the sort column comes from the query's allow-list, never
// raw client input.
func (r *GORMVehicleRepository) List(query models.VehicleQuery) ([]models.Vehicle, error) {
	tx := r.db.Model(&models.Vehicle{})

	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Location != "" {
		tx = tx.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(query.Location)+"%")
	}
	if query.MinPrice != nil {
		tx = tx.Where("price_per_day >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("price_per_day <= ?", *query.MaxPrice)
	}
	if query.UserEmail != "" {
		tx = tx.Where("user_email = ?", query.UserEmail)
	}

	direction := "ASC"
	if query.Descending() {
		direction = "DESC"
	}
	tx = tx.Order(query.SortColumn() + " " + direction)

	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	vehicles := make([]models.Vehicle, 0)
	if err := tx.Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// GetByID retrieves a single vehicle by its ID.
func (r *GORMVehicleRepository) GetByID(id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle by ID %s: %w", id, err)
	}
	return &vehicle, nil
}

// GetByIDs retrieves the vehicles for the given IDs, keyed by ID. Missing
// IDs are simply absent from the map; callers use that for join semantics.
func (r *GORMVehicleRepository) GetByIDs(ids []string) (map[string]models.Vehicle, error) {
	byID := make(map[string]models.Vehicle, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var vehicles []models.Vehicle
	if err := r.db.Where("id IN ?", ids).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to get vehicles by IDs: %w", err)
	}
	for _, v := range vehicles {
		byID[v.ID] = v
	}
	return byID, nil
}

// Create inserts a new vehicle, generating its ID if absent.
func (r *GORMVehicleRepository) Create(vehicle *models.Vehicle) error {
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	if err := r.db.Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Update applies a partial update to a vehicle and returns the number of
// rows modified. GORM maintains updated_at on its own.
func (r *GORMVehicleRepository) Update(id string, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Vehicle{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update vehicle %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete hard-deletes a vehicle and returns the number of rows removed.
// Bookings referencing the vehicle are left in place.
func (r *GORMVehicleRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete vehicle %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
