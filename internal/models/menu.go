package models

import "gorm.io/gorm"

// Category groups menu items (e.g. starters, drinks, desserts).
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// MenuItem represents a dish or drink on the menu. Its current price is only a
// default for new order lines; placed lines keep the price they were sold at.
type MenuItem struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryID  string  `json:"category_id" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	IsAvailable bool    `json:"is_available"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
