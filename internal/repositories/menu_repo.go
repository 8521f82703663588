package repositories

import (
	"github.com/automatamexico/Restaurante/internal/models"
)

// MenuItemRepository defines the interface for menu item data access.
type MenuItemRepository interface {
	GetAll() ([]models.MenuItem, error)
	GetByID(id string) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id string) error
}

// CategoryRepository defines the interface for menu category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(category *models.Category) error
}
