package repositories

import (
	"time"

	"rentwheels/internal/models"
)

// VehicleBookingStat is one group of the bookings-per-vehicle aggregation,
// before the vehicle join.
type VehicleBookingStat struct {
	VehicleID     string
	TotalBookings int64
	LastBookingAt time.Time
}

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	ListByUserEmail(email string) ([]models.Booking, error)
	TopVehicleStats(limit int) ([]VehicleBookingStat, error)
}
