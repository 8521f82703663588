package services

import (
	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/repositories"
)

// InventoryService handles business logic related to stocked supplies.
type InventoryService struct {
	repo repositories.InventoryRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.InventoryRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

// GetAllItems retrieves all inventory items.
func (s *InventoryService) GetAllItems() ([]models.InventoryItem, error) {
	return s.repo.GetAll()
}

// GetItemByID retrieves a single inventory item by its ID.
func (s *InventoryService) GetItemByID(id string) (*models.InventoryItem, error) {
	return s.repo.GetByID(id)
}

// CreateItem creates a new inventory item.
func (s *InventoryService) CreateItem(item *models.InventoryItem) error {
	return s.repo.Create(item)
}

// UpdateItem updates an existing inventory item.
func (s *InventoryService) UpdateItem(item *models.InventoryItem) error {
	return s.repo.Update(item)
}

// DeleteItem deletes an inventory item by its ID.
func (s *InventoryService) DeleteItem(id string) error {
	return s.repo.Delete(id)
}

// LowStockItems returns the items at or below their minimum stock level.
func (s *InventoryService) LowStockItems() ([]models.InventoryItem, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	low := make([]models.InventoryItem, 0)
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}
