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

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	service  *services.MenuService
	validate *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the menu routes with the Fiber app.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Get("/items", h.HandleGetItems)
	menuRoutes.Get("/items/:id", h.HandleGetItemByID)
	menuRoutes.Post("/items", h.HandleCreateItem)
	menuRoutes.Put("/items/:id", h.HandleUpdateItem)
	menuRoutes.Delete("/items/:id", middleware.RequireRole(models.RoleAdmin), h.HandleDeleteItem)
	menuRoutes.Get("/categories", h.HandleGetCategories)
	menuRoutes.Post("/categories", h.HandleCreateCategory)
}

// HandleGetItems retrieves all menu items.
func (h *MenuHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		log.Printf("Error getting menu items: %v", err)
		return respondError(c, "Could not retrieve menu items", err)
	}
	return c.JSON(items)
}

// HandleGetItemByID retrieves a single menu item by its ID.
func (h *MenuHandler) HandleGetItemByID(c *fiber.Ctx) error {
	itemID := c.Params("id")
	item, err := h.service.GetItemByID(itemID)
	if err != nil {
		log.Printf("Error getting menu item by ID %s: %v", itemID, err)
		return respondError(c, fmt.Sprintf("Could not retrieve menu item %s", itemID), err)
	}
	return c.JSON(item)
}

// HandleCreateItem creates a new menu item.
func (h *MenuHandler) HandleCreateItem(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing menu item request body: %v", err)
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
		log.Printf("Error creating menu item: %v", err)
		return respondError(c, "Could not create menu item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem updates an existing menu item.
func (h *MenuHandler) HandleUpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing menu item update body: %v", err)
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
		log.Printf("Error updating menu item %s: %v", itemID, err)
		return respondError(c, fmt.Sprintf("Could not update menu item %s", itemID), err)
	}
	return c.JSON(item)
}

// HandleDeleteItem deletes a menu item.
func (h *MenuHandler) HandleDeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if err := h.service.DeleteItem(itemID); err != nil {
		log.Printf("Error deleting menu item %s: %v", itemID, err)
		return respondError(c, fmt.Sprintf("Could not delete menu item %s", itemID), err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Menu item %s deleted successfully", itemID),
	})
}

// HandleGetCategories retrieves all categories.
func (h *MenuHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return respondError(c, "Could not retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleCreateCategory creates a new category.
func (h *MenuHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, "Could not create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
