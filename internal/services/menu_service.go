package services

import (
	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/repositories"
)

// MenuService handles business logic related to the menu catalog.
type MenuService struct {
	itemRepo     repositories.MenuItemRepository
	categoryRepo repositories.CategoryRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(itemRepo repositories.MenuItemRepository, categoryRepo repositories.CategoryRepository) *MenuService {
	return &MenuService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// GetAllItems retrieves all menu items.
func (s *MenuService) GetAllItems() ([]models.MenuItem, error) {
	return s.itemRepo.GetAll()
}

// GetItemByID retrieves a single menu item by its ID.
func (s *MenuService) GetItemByID(id string) (*models.MenuItem, error) {
	return s.itemRepo.GetByID(id)
}

// CreateItem creates a new menu item. Changing a price later never touches
// already placed order lines; they keep the price they were sold at.
func (s *MenuService) CreateItem(item *models.MenuItem) error {
	return s.itemRepo.Create(item)
}

// UpdateItem updates an existing menu item.
func (s *MenuService) UpdateItem(item *models.MenuItem) error {
	return s.itemRepo.Update(item)
}

// DeleteItem deletes a menu item by its ID.
func (s *MenuService) DeleteItem(id string) error {
	return s.itemRepo.Delete(id)
}

// GetAllCategories retrieves all categories.
func (s *MenuService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateCategory creates a new category.
func (s *MenuService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}
