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

// TableHandler handles HTTP requests for tables.
type TableHandler struct {
	service  *services.TableService
	validate *validator.Validate
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(service *services.TableService) *TableHandler {
	return &TableHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the table routes with the Fiber app.
func (h *TableHandler) RegisterRoutes(router fiber.Router) {
	tableRoutes := router.Group("/tables")
	tableRoutes.Get("/", h.HandleGetTables)
	tableRoutes.Get("/:id", h.HandleGetTableByID)
	tableRoutes.Post("/", h.HandleCreateTable)
	tableRoutes.Put("/:id", h.HandleUpdateTable)
	tableRoutes.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.HandleDeleteTable)
}

// HandleGetTables retrieves all tables.
func (h *TableHandler) HandleGetTables(c *fiber.Ctx) error {
	tables, err := h.service.GetAllTables()
	if err != nil {
		log.Printf("Error getting all tables: %v", err)
		return respondError(c, "Could not retrieve tables", err)
	}
	return c.JSON(tables)
}

// HandleGetTableByID retrieves a single table by its ID.
func (h *TableHandler) HandleGetTableByID(c *fiber.Ctx) error {
	tableID := c.Params("id")
	table, err := h.service.GetTableByID(tableID)
	if err != nil {
		log.Printf("Error getting table by ID %s: %v", tableID, err)
		return respondError(c, fmt.Sprintf("Could not retrieve table %s", tableID), err)
	}
	return c.JSON(table)
}

// HandleCreateTable creates a new table.
func (h *TableHandler) HandleCreateTable(c *fiber.Ctx) error {
	var table models.Table
	if err := c.BodyParser(&table); err != nil {
		log.Printf("Error parsing table request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(table); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateTable(&table); err != nil {
		log.Printf("Error creating table: %v", err)
		return respondError(c, "Could not create table", err)
	}
	return c.Status(fiber.StatusCreated).JSON(table)
}

// HandleUpdateTable updates an existing table.
func (h *TableHandler) HandleUpdateTable(c *fiber.Ctx) error {
	tableID := c.Params("id")

	var table models.Table
	if err := c.BodyParser(&table); err != nil {
		log.Printf("Error parsing table update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	table.ID = tableID

	if err := h.validate.Struct(table); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateTable(&table); err != nil {
		log.Printf("Error updating table %s: %v", tableID, err)
		return respondError(c, fmt.Sprintf("Could not update table %s", tableID), err)
	}
	return c.JSON(table)
}

// HandleDeleteTable deletes a table.
func (h *TableHandler) HandleDeleteTable(c *fiber.Ctx) error {
	tableID := c.Params("id")
	if err := h.service.DeleteTable(tableID); err != nil {
		log.Printf("Error deleting table %s: %v", tableID, err)
		return respondError(c, fmt.Sprintf("Could not delete table %s", tableID), err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Table %s deleted successfully", tableID),
	})
}
