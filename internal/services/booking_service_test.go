package services_test

import (
	"errors"
	"fmt"
	"testing"

	"rentwheels/internal/models"
	"rentwheels/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const renterMail = "renter@example.com"

func bookingRequest() models.Booking {
	return models.Booking{
		VehicleID:  vehicleID,
		UserEmail:  otherMail, // body-supplied identity, must be ignored
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
		TotalPrice: 480,
	}
}

func TestBookingService_CreateBooking_StampsRenterIdentity(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleRepository)
	publisher := &recordingPublisher{}
	service := services.NewBookingService(mockBookings, mockVehicles, publisher)

	mockVehicles.On("GetByID", vehicleID).Return(ownedVehicle(), nil).Once()
	var stored *models.Booking
	mockBookings.On("Create", mock.AnythingOfType("*models.Booking")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*models.Booking)
	}).Return(nil).Once()

	created, err := service.CreateBooking(bookingRequest(), services.VerifiedIdentity{Email: renterMail, UID: "uid-9"})

	assert.NoError(t, err)
	assert.Equal(t, renterMail, created.UserEmail)
	assert.Equal(t, renterMail, stored.UserEmail)
	assert.Equal(t, vehicleID, created.VehicleID)

	// One event, carrying the verified renter.
	assert.Len(t, publisher.events, 1)
	assert.Equal(t, renterMail, publisher.events[0]["userEmail"])
	assert.Equal(t, vehicleID, publisher.events[0]["vehicleId"])
	mockBookings.AssertExpectations(t)
	mockVehicles.AssertExpectations(t)
}

func TestBookingService_CreateBooking_VehicleMustExist(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleRepository)
	service := services.NewBookingService(mockBookings, mockVehicles, nil)

	mockVehicles.On("GetByID", vehicleID).Return(nil, fmt.Errorf("vehicle with ID %s: %w", vehicleID, models.ErrNotFound)).Once()

	booking, err := service.CreateBooking(bookingRequest(), services.VerifiedIdentity{Email: renterMail})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBookingService_CreateBooking_MalformedVehicleID(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleRepository)
	service := services.NewBookingService(mockBookings, mockVehicles, nil)

	request := bookingRequest()
	request.VehicleID = "nope"
	booking, err := service.CreateBooking(request, services.VerifiedIdentity{Email: renterMail})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	mockVehicles.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestBookingService_CreateBooking_PublishFailureIsNotFatal(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleRepository)
	publisher := &recordingPublisher{err: errors.New("broker down")}
	service := services.NewBookingService(mockBookings, mockVehicles, publisher)

	mockVehicles.On("GetByID", vehicleID).Return(ownedVehicle(), nil).Once()
	mockBookings.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil).Once()

	booking, err := service.CreateBooking(bookingRequest(), services.VerifiedIdentity{Email: renterMail})

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestBookingService_MyBookings_DropsDanglingReferences(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleRepository)
	service := services.NewBookingService(mockBookings, mockVehicles, nil)

	goneID := "11111111-2222-3333-4444-555555555555"
	bookings := []models.Booking{
		{ID: "b-2", VehicleID: vehicleID, UserEmail: renterMail},
		{ID: "b-1", VehicleID: goneID, UserEmail: renterMail},
	}
	mockBookings.On("ListByUserEmail", renterMail).Return(bookings, nil).Once()
	mockVehicles.On("GetByIDs", []string{vehicleID, goneID}).Return(map[string]models.Vehicle{
		vehicleID: *ownedVehicle(),
	}, nil).Once()

	joined, err := service.MyBookings(services.VerifiedIdentity{Email: renterMail})

	assert.NoError(t, err)
	assert.Len(t, joined, 1)
	assert.Equal(t, "b-2", joined[0].ID)
	assert.Equal(t, vehicleID, joined[0].Vehicle.ID)
	mockBookings.AssertExpectations(t)
	mockVehicles.AssertExpectations(t)
}

func TestBookingService_MyBookings_EmptyIsNotAnError(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleRepository)
	service := services.NewBookingService(mockBookings, mockVehicles, nil)

	mockBookings.On("ListByUserEmail", renterMail).Return([]models.Booking{}, nil).Once()
	mockVehicles.On("GetByIDs", []string{}).Return(map[string]models.Vehicle{}, nil).Once()

	joined, err := service.MyBookings(services.VerifiedIdentity{Email: renterMail})

	assert.NoError(t, err)
	assert.Empty(t, joined)
}
