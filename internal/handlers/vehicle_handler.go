package handlers

import (
	"fmt"
	"log"
	"strconv"

	"rentwheels/internal/middleware"
	"rentwheels/internal/models"
	"rentwheels/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// VehicleHandler handles HTTP requests for vehicle listings.
type VehicleHandler struct {
	service  *services.VehicleService
	validate *validator.Validate
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(service *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only discovery routes.
func (h *VehicleHandler) RegisterPublicRoutes(router fiber.Router) {
	vehicleRoutes := router.Group("/vehicles")
	vehicleRoutes.Get("/", h.HandleListVehicles)
	vehicleRoutes.Get("/:id", h.HandleGetVehicleByID)
}

// RegisterProtectedRoutes registers the authenticated mutation routes.
// The router is expected to carry the auth middleware already.
func (h *VehicleHandler) RegisterProtectedRoutes(router fiber.Router) {
	vehicleRoutes := router.Group("/vehicles")
	vehicleRoutes.Post("/", h.HandleCreateVehicle)
	vehicleRoutes.Patch("/:id", h.HandleUpdateVehicle)
	vehicleRoutes.Delete("/:id", h.HandleDeleteVehicle)
}

// parseVehicleQuery coerces the discovery query parameters once, at the
// boundary. Malformed numeric parameters are invalid input rather than
// being silently ignored.
func parseVehicleQuery(c *fiber.Ctx) (models.VehicleQuery, error) {
	query := models.VehicleQuery{
		Category:  c.Query("category"),
		Location:  c.Query("location"),
		UserEmail: c.Query("userEmail"),
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, fmt.Errorf("malformed minPrice %q: %w", raw, models.ErrInvalidInput)
		}
		query.MinPrice = &price
	}
	if raw := c.Query("maxPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, fmt.Errorf("malformed maxPrice %q: %w", raw, models.ErrInvalidInput)
		}
		query.MaxPrice = &price
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return query, fmt.Errorf("malformed limit %q: %w", raw, models.ErrInvalidInput)
		}
		query.Limit = limit
	}

	return query, nil
}

// HandleListVehicles retrieves vehicles matching the query parameters,
// wrapped in an items envelope.
func (h *VehicleHandler) HandleListVehicles(c *fiber.Ctx) error {
	query, err := parseVehicleQuery(c)
	if err != nil {
		return writeError(c, err, "Could not parse query")
	}

	vehicles, err := h.service.ListVehicles(query)
	if err != nil {
		log.Printf("Error listing vehicles: %v", err)
		return writeError(c, err, "Could not retrieve vehicles")
	}
	return c.JSON(fiber.Map{
		"items": vehicles,
	})
}

// HandleGetVehicleByID retrieves a single vehicle by its ID.
func (h *VehicleHandler) HandleGetVehicleByID(c *fiber.Ctx) error {
	vehicle, err := h.service.GetVehicleByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting vehicle by ID %s: %v", c.Params("id"), err)
		return writeError(c, err, "Could not retrieve vehicle")
	}
	return c.JSON(vehicle)
}

// HandleCreateVehicle creates a new listing owned by the verified caller.
func (h *VehicleHandler) HandleCreateVehicle(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return writeError(c, models.ErrUnauthenticated, "")
	}

	var vehicle models.Vehicle
	if err := c.BodyParser(&vehicle); err != nil {
		log.Printf("Error parsing vehicle request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	vehicle.ID = "" // store-generated, never client-supplied
	if err := h.validate.Struct(vehicle); err != nil {
		return writeValidationError(c, err)
	}

	if err := h.service.CreateVehicle(&vehicle, identity); err != nil {
		log.Printf("Error creating vehicle: %v", err)
		return writeError(c, err, "Could not create vehicle")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"insertedId": vehicle.ID,
		"vehicle":    vehicle,
	})
}

// HandleUpdateVehicle applies a partial update to an owned listing.
func (h *VehicleHandler) HandleUpdateVehicle(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return writeError(c, models.ErrUnauthenticated, "")
	}

	var patch models.VehiclePatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing vehicle patch body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(patch); err != nil {
		return writeValidationError(c, err)
	}

	modified, err := h.service.UpdateVehicle(c.Params("id"), patch, identity)
	if err != nil {
		log.Printf("Error updating vehicle %s: %v", c.Params("id"), err)
		return writeError(c, err, "Could not update vehicle")
	}

	return c.JSON(fiber.Map{
		"message":       "vehicle updated successfully",
		"modifiedCount": modified,
	})
}

// HandleDeleteVehicle hard-deletes an owned listing.
func (h *VehicleHandler) HandleDeleteVehicle(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return writeError(c, models.ErrUnauthenticated, "")
	}

	deleted, err := h.service.DeleteVehicle(c.Params("id"), identity)
	if err != nil {
		log.Printf("Error deleting vehicle %s: %v", c.Params("id"), err)
		return writeError(c, err, "Could not delete vehicle")
	}

	return c.JSON(fiber.Map{
		"message":      "vehicle deleted successfully",
		"deletedCount": deleted,
	})
}
