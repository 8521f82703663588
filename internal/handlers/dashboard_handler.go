package handlers

import (
	"log"

	"github.com/automatamexico/Restaurante/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the aggregated dashboard stats.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleOverview)
}

// HandleOverview returns the dashboard stats.
func (h *DashboardHandler) HandleOverview(c *fiber.Ctx) error {
	stats, err := h.service.Overview()
	if err != nil {
		log.Printf("Error building dashboard: %v", err)
		return respondError(c, "Could not build dashboard", err)
	}
	return c.JSON(stats)
}
