package handlers

import (
	"log"

	"rentwheels/internal/middleware"
	"rentwheels/internal/models"
	"rentwheels/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service  *services.BookingService
	validate *validator.Validate
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterProtectedRoutes registers the booking routes; all of them
// require a verified identity.
func (h *BookingHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/bookings", h.HandleCreateBooking)
	router.Get("/my-bookings", h.HandleMyBookings)
}

// HandleCreateBooking creates a booking for the verified caller.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return writeError(c, models.ErrUnauthenticated, "")
	}

	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		log.Printf("Error parsing booking request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(booking); err != nil {
		return writeValidationError(c, err)
	}

	created, err := h.service.CreateBooking(booking, identity)
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		return writeError(c, err, "Could not create booking")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleMyBookings retrieves the caller's bookings joined with their
// vehicles.
func (h *BookingHandler) HandleMyBookings(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return writeError(c, models.ErrUnauthenticated, "")
	}

	bookings, err := h.service.MyBookings(identity)
	if err != nil {
		log.Printf("Error getting bookings for %s: %v", identity.Email, err)
		return writeError(c, err, "Could not retrieve bookings")
	}
	return c.JSON(fiber.Map{
		"items": bookings,
	})
}
