package repositories

import (
	"fmt"

	"rentwheels/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// Create inserts a new booking, generating its ID if absent.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// ListByUserEmail retrieves a renter's bookings, newest first.
func (r *GORMBookingRepository) ListByUserEmail(email string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := r.db.Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// TopVehicleStats groups bookings by vehicle and returns the most-booked
// groups, ordered by booking count with last-booking time breaking ties,
// truncated to limit. The limit applies here, before any vehicle join, so
// a vehicle deleted after booking shrinks the result rather than promoting
// the next group.
func (r *GORMBookingRepository) TopVehicleStats(limit int) ([]VehicleBookingStat, error) {
	var groups []struct {
		VehicleID     string
		TotalBookings int64
	}
	err := r.db.Model(&models.Booking{}).
		Select("vehicle_id, COUNT(*) AS total_bookings").
		Group("vehicle_id").
		Order("total_bookings DESC, MAX(created_at) DESC").
		Limit(limit).
		Scan(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings per vehicle: %w", err)
	}

	stats := make([]VehicleBookingStat, 0, len(groups))
	if len(groups) == 0 {
		return stats, nil
	}

	// MAX(created_at) is fetched from the plain column rather than the
	// aggregate select: expression columns lose their declared type, and
	// the sqlite driver only maps declared datetime columns to time.Time.
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.VehicleID)
	}
	var rows []models.Booking
	if err := r.db.Select("vehicle_id, created_at").Where("vehicle_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load booking times: %w", err)
	}
	lastByVehicle := make(map[string]models.Booking, len(ids))
	for _, b := range rows {
		if last, ok := lastByVehicle[b.VehicleID]; !ok || b.CreatedAt.After(last.CreatedAt) {
			lastByVehicle[b.VehicleID] = b
		}
	}

	for _, g := range groups {
		stats = append(stats, VehicleBookingStat{
			VehicleID:     g.VehicleID,
			TotalBookings: g.TotalBookings,
			LastBookingAt: lastByVehicle[g.VehicleID].CreatedAt,
		})
	}
	return stats, nil
}
