package services_test

import (
	"testing"
	"time"

	"rentwheels/internal/models"
	"rentwheels/internal/repositories"
	"rentwheels/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_TopVehicles_DefaultLimit(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleRepository)
	service := services.NewStatsService(mockBookings, mockVehicles)

	mockBookings.On("TopVehicleStats", 3).Return([]repositories.VehicleBookingStat{}, nil).Once()
	mockVehicles.On("GetByIDs", []string{}).Return(map[string]models.Vehicle{}, nil).Once()

	stats, err := service.TopVehicles(0)

	assert.NoError(t, err)
	assert.Empty(t, stats)
	mockBookings.AssertExpectations(t)
}

func TestStatsService_TopVehicles_JoinsAndFlattens(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleRepository)
	service := services.NewStatsService(mockBookings, mockVehicles)

	lastBooked := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	goneID := "11111111-2222-3333-4444-555555555555"
	groups := []repositories.VehicleBookingStat{
		{VehicleID: vehicleID, TotalBookings: 3, LastBookingAt: lastBooked},
		{VehicleID: goneID, TotalBookings: 1, LastBookingAt: lastBooked.Add(-time.Hour)},
	}
	mockBookings.On("TopVehicleStats", 5).Return(groups, nil).Once()
	// The second group's vehicle was deleted after booking; it drops out.
	mockVehicles.On("GetByIDs", []string{vehicleID, goneID}).Return(map[string]models.Vehicle{
		vehicleID: *ownedVehicle(),
	}, nil).Once()

	stats, err := service.TopVehicles(5)

	assert.NoError(t, err)
	assert.Len(t, stats, 1)
	assert.Equal(t, vehicleID, stats[0].VehicleID)
	assert.Equal(t, "Toyota Land Cruiser", stats[0].VehicleName)
	assert.Equal(t, "SUV", stats[0].Category)
	assert.Equal(t, int64(3), stats[0].TotalBookings)
	assert.Equal(t, lastBooked, stats[0].LastBookingAt)
	mockBookings.AssertExpectations(t)
	mockVehicles.AssertExpectations(t)
}
