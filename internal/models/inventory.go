package models

import "gorm.io/gorm"

// InventoryItem represents a stocked ingredient or supply.
type InventoryItem struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Unit          string  `json:"unit" validate:"required,max=20"`
	Quantity      float64 `json:"quantity" validate:"gte=0"`
	MinStockLevel float64 `json:"min_stock_level" validate:"gte=0"`
	Supplier      string  `json:"supplier" validate:"omitempty,max=100"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// LowStock reports whether the item is at or below its minimum stock level.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStockLevel
}
