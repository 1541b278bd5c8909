package services

import (
	"fmt"
	"log"

	"rentwheels/internal/models"
	"rentwheels/internal/repositories"

	"github.com/google/uuid"
)

// BookingEventPublisher publishes booking lifecycle events to the message
// broker. Publishing is best-effort: a failure is logged, never surfaced
// to the renter.
type BookingEventPublisher interface {
	PublishBookingCreated(event map[string]interface{}) error
}

// BookingService handles booking creation and the renter's joined
// bookings view.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	vehicleRepo repositories.VehicleRepository
	publisher   BookingEventPublisher
}

// NewBookingService creates a new BookingService. publisher may be nil
// when no broker is configured.
func NewBookingService(bookingRepo repositories.BookingRepository, vehicleRepo repositories.VehicleRepository, publisher BookingEventPublisher) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		publisher:   publisher,
	}
}

// CreateBooking creates a booking for the verified caller. The referenced
// vehicle must exist at creation time; there is no cascade afterwards, so
// the booking may later dangle if the vehicle is deleted.
func (s *BookingService) CreateBooking(request models.Booking, identity VerifiedIdentity) (*models.Booking, error) {
	if _, err := uuid.Parse(request.VehicleID); err != nil {
		return nil, fmt.Errorf("malformed vehicle ID %q: %w", request.VehicleID, models.ErrInvalidInput)
	}
	vehicle, err := s.vehicleRepo.GetByID(request.VehicleID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		VehicleID:  request.VehicleID,
		UserEmail:  identity.Email, // renter identity comes from the token, not the body
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		TotalPrice: request.TotalPrice,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"bookingId":   booking.ID,
			"vehicleId":   booking.VehicleID,
			"vehicleName": vehicle.VehicleName,
			"userEmail":   booking.UserEmail,
			"startDate":   booking.StartDate,
			"endDate":     booking.EndDate,
			"totalPrice":  booking.TotalPrice,
		}
		if err := s.publisher.PublishBookingCreated(event); err != nil {
			log.Printf("Warning: failed to publish booking created event for booking %s: %v", booking.ID, err)
		}
	}

	return booking, nil
}

// MyBookings returns the caller's bookings joined with their vehicles,
// newest first. A booking whose vehicle no longer exists is dropped from
// the view but kept in storage.
func (s *BookingService) MyBookings(identity VerifiedIdentity) ([]models.BookingWithVehicle, error) {
	bookings, err := s.bookingRepo.ListByUserEmail(identity.Email)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.VehicleID)
	}
	vehicles, err := s.vehicleRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	joined := make([]models.BookingWithVehicle, 0, len(bookings))
	for _, b := range bookings {
		vehicle, ok := vehicles[b.VehicleID]
		if !ok {
			continue
		}
		joined = append(joined, models.BookingWithVehicle{Booking: b, Vehicle: vehicle})
	}
	return joined, nil
}
