package handlers

import (
	"fmt"
	"log"

	"github.com/automatamexico/Restaurante/internal/middleware"
	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles HTTP requests for stocked supplies.
type InventoryHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Get("/", h.HandleGetItems)
	inventoryRoutes.Get("/low-stock", h.HandleLowStock)
	inventoryRoutes.Get("/:id", h.HandleGetItemByID)
	inventoryRoutes.Post("/", h.HandleCreateItem)
	inventoryRoutes.Put("/:id", h.HandleUpdateItem)
	inventoryRoutes.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.HandleDeleteItem)
}

// HandleGetItems retrieves all inventory items.
func (h *InventoryHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		log.Printf("Error getting inventory items: %v", err)
		return respondError(c, "Could not retrieve inventory items", err)
	}
	return c.JSON(items)
}

// HandleLowStock retrieves the items at or below their minimum stock level.
func (h *InventoryHandler) HandleLowStock(c *fiber.Ctx) error {
	items, err := h.service.LowStockItems()
	if err != nil {
		log.Printf("Error getting low stock items: %v", err)
		return respondError(c, "Could not retrieve low stock items", err)
	}
	return c.JSON(items)
}

// HandleGetItemByID retrieves a single inventory item by its ID.
func (h *InventoryHandler) HandleGetItemByID(c *fiber.Ctx) error {
	itemID := c.Params("id")
	item, err := h.service.GetItemByID(itemID)
	if err != nil {
		log.Printf("Error getting inventory item by ID %s: %v", itemID, err)
		return respondError(c, fmt.Sprintf("Could not retrieve inventory item %s", itemID), err)
	}
	return c.JSON(item)
}

// HandleCreateItem creates a new inventory item.
func (h *InventoryHandler) HandleCreateItem(c *fiber.Ctx) error {
	var item models.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing inventory request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateItem(&item); err != nil {
		log.Printf("Error creating inventory item: %v", err)
		return respondError(c, "Could not create inventory item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem updates an existing inventory item.
func (h *InventoryHandler) HandleUpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	var item models.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing inventory update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	item.ID = itemID

	if err := h.validate.Struct(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateItem(&item); err != nil {
		log.Printf("Error updating inventory item %s: %v", itemID, err)
		return respondError(c, fmt.Sprintf("Could not update inventory item %s", itemID), err)
	}
	return c.JSON(item)
}

// HandleDeleteItem deletes an inventory item.
func (h *InventoryHandler) HandleDeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if err := h.service.DeleteItem(itemID); err != nil {
		log.Printf("Error deleting inventory item %s: %v", itemID, err)
		return respondError(c, fmt.Sprintf("Could not delete inventory item %s", itemID), err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Inventory item %s deleted successfully", itemID),
	})
}
