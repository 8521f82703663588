package repositories

import (
	"fmt"

	"github.com/automatamexico/Restaurante/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTableRepository is a GORM implementation of TableRepository.
type GORMTableRepository struct {
	db *gorm.DB
}

// NewGORMTableRepository creates a new instance of GORMTableRepository.
func NewGORMTableRepository(db *gorm.DB) *GORMTableRepository {
	return &GORMTableRepository{
		db: db,
	}
}

// GetAll retrieves all tables ordered by name.
func (r *GORMTableRepository) GetAll() ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.Order("name ASC").Find(&tables).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tables: %w", err)
	}
	return tables, nil
}

// GetByID retrieves a single table by its ID.
func (r *GORMTableRepository) GetByID(id string) (*models.Table, error) {
	var table models.Table
	if err := r.db.First(&table, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("table with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get table by ID %s: %w", id, err)
	}
	return &table, nil
}

// CountByStatus counts tables in the given status.
func (r *GORMTableRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Table{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tables with status %s: %w", status, err)
	}
	return count, nil
}

// Create creates a new table.
func (r *GORMTableRepository) Create(table *models.Table) error {
	if table.ID == "" {
		table.ID = uuid.New().String()
	}
	if err := r.db.Create(table).Error; err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Update updates an existing table.
func (r *GORMTableRepository) Update(table *models.Table) error {
	res := r.db.Save(table)
	if res.Error != nil {
		return fmt.Errorf("failed to update table: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("table with ID %s not found for update", table.ID)
	}
	return nil
}

// Delete deletes a table by its ID.
func (r *GORMTableRepository) Delete(id string) error {
	res := r.db.Delete(&models.Table{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete table: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("table with ID %s not found for deletion", id)
	}
	return nil
}
