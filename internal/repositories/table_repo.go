package repositories

import (
	"github.com/automatamexico/Restaurante/internal/models"
)

// TableRepository defines the interface for table data access.
type TableRepository interface {
	GetAll() ([]models.Table, error)
	GetByID(id string) (*models.Table, error)
	CountByStatus(status string) (int64, error)
	Create(table *models.Table) error
	Update(table *models.Table) error
	Delete(id string) error
}
