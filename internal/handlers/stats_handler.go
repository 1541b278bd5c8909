package handlers

import (
	"fmt"
	"log"
	"strconv"

	"rentwheels/internal/models"
	"rentwheels/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles HTTP requests for aggregated marketplace views.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// RegisterPublicRoutes registers the stats routes.
func (h *StatsHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/stats/top-vehicles", h.HandleTopVehicles)
}

// HandleTopVehicles retrieves the most-booked vehicles with their
// aggregates. limit defaults to 3.
func (h *StatsHandler) HandleTopVehicles(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return writeError(c, fmt.Errorf("malformed limit %q: %w", raw, models.ErrInvalidInput), "")
		}
		limit = parsed
	}

	stats, err := h.service.TopVehicles(limit)
	if err != nil {
		log.Printf("Error aggregating top vehicles: %v", err)
		return writeError(c, err, "Could not aggregate top vehicles")
	}
	return c.JSON(fiber.Map{
		"items": stats,
	})
}
