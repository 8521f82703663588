package repositories

import (
	"github.com/automatamexico/Restaurante/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByStatuses(statuses []string) ([]models.Order, error)
	GetRecent(limit int) ([]models.Order, error)
	CountByStatus(status string) (int64, error)
	Create(order *models.Order) error
	// ReplaceLines saves the order row and swaps its full line set in one
	// transaction. Lines are never edited in place.
	ReplaceLines(order *models.Order) error
	UpdateStatus(id string, status string) error
	Delete(id string) error
}
