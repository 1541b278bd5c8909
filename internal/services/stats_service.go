package services

import (
	"rentwheels/internal/models"
	"rentwheels/internal/repositories"
)

// defaultTopVehiclesLimit is used when the caller gives no limit.
const defaultTopVehiclesLimit = 3

// StatsService computes the top-booked-vehicles aggregation.
type StatsService struct {
	bookingRepo repositories.BookingRepository
	vehicleRepo repositories.VehicleRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(bookingRepo repositories.BookingRepository, vehicleRepo repositories.VehicleRepository) *StatsService {
	return &StatsService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
	}
}

// TopVehicles returns the most-booked vehicles, flattened with their
// booking aggregates. Groups whose vehicle no longer exists are dropped
// after the limit is applied, so the result may hold fewer than limit
// entries. An empty booking store yields an empty slice, not an error.
func (s *StatsService) TopVehicles(limit int) ([]models.TopVehicleStat, error) {
	if limit <= 0 {
		limit = defaultTopVehiclesLimit
	}

	groups, err := s.bookingRepo.TopVehicleStats(limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.VehicleID)
	}
	vehicles, err := s.vehicleRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	stats := make([]models.TopVehicleStat, 0, len(groups))
	for _, g := range groups {
		vehicle, ok := vehicles[g.VehicleID]
		if !ok {
			continue
		}
		stats = append(stats, models.TopVehicleStat{
			VehicleID:     vehicle.ID,
			VehicleName:   vehicle.VehicleName,
			Owner:         vehicle.Owner,
			Category:      vehicle.Category,
			PricePerDay:   vehicle.PricePerDay,
			Location:      vehicle.Location,
			CoverImage:    vehicle.CoverImage,
			TotalBookings: g.TotalBookings,
			LastBookingAt: g.LastBookingAt,
		})
	}
	return stats, nil
}
