package models

import "gorm.io/gorm"

// Table statuses.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

// Table represents a physical table in the restaurant.
type Table struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Capacity   int    `json:"capacity" validate:"required,gt=0"`
	Status     string `json:"status" validate:"omitempty,oneof=available occupied reserved"`
	Location   string `json:"location" validate:"omitempty,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
