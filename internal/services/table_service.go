package services

import (
	"fmt"

	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/repositories"
)

// TableService handles business logic related to tables.
type TableService struct {
	repo repositories.TableRepository
}

// NewTableService creates a new TableService.
func NewTableService(repo repositories.TableRepository) *TableService {
	return &TableService{
		repo: repo,
	}
}

// GetAllTables retrieves all tables.
func (s *TableService) GetAllTables() ([]models.Table, error) {
	return s.repo.GetAll()
}

// GetTableByID retrieves a single table by its ID.
func (s *TableService) GetTableByID(id string) (*models.Table, error) {
	return s.repo.GetByID(id)
}

// CreateTable creates a new table, defaulting its status to available.
func (s *TableService) CreateTable(table *models.Table) error {
	if table.Status == "" {
		table.Status = models.TableAvailable
	}
	return s.repo.Create(table)
}

// UpdateTable updates an existing table.
func (s *TableService) UpdateTable(table *models.Table) error {
	if table.Status != "" && table.Status != models.TableAvailable &&
		table.Status != models.TableOccupied && table.Status != models.TableReserved {
		return fmt.Errorf("invalid table status: %s", table.Status)
	}
	return s.repo.Update(table)
}

// DeleteTable deletes a table by its ID.
func (s *TableService) DeleteTable(id string) error {
	return s.repo.Delete(id)
}
