package handlers

import (
	"log"

	"github.com/automatamexico/Restaurante/internal/services"

	"github.com/gofiber/fiber/v2"
)

// KitchenHandler serves the kitchen display: active orders oldest-first.
// Status changes go through the same lifecycle rules as the orders routes.
type KitchenHandler struct {
	service *services.OrderService
}

// NewKitchenHandler creates a new KitchenHandler.
func NewKitchenHandler(service *services.OrderService) *KitchenHandler {
	return &KitchenHandler{
		service: service,
	}
}

// RegisterRoutes registers the kitchen routes with the Fiber app.
func (h *KitchenHandler) RegisterRoutes(router fiber.Router) {
	kitchenRoutes := router.Group("/kitchen")
	kitchenRoutes.Get("/orders", h.HandleGetKitchenOrders)
}

// HandleGetKitchenOrders retrieves the orders the kitchen still has to act on.
func (h *KitchenHandler) HandleGetKitchenOrders(c *fiber.Ctx) error {
	orders, err := h.service.KitchenOrders()
	if err != nil {
		log.Printf("Error getting kitchen orders: %v", err)
		return respondError(c, "Could not retrieve kitchen orders", err)
	}
	return c.JSON(orders)
}
