package models

import "time"

// Order lifecycle statuses. An order moves forward through the kitchen flow and
// terminates in either "paid" (reached only through settlement, never set by a
// client request) or "cancelled".
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusServed    = "served"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// KitchenStatuses are the statuses a kitchen display cares about.
var KitchenStatuses = []string{StatusPending, StatusPreparing, StatusReady}

// orderTransitions maps each status to the statuses a staff action may move it to.
// The transition to "paid" is intentionally absent: it is system-driven by the
// billing service once recorded payments cover the total.
var orderTransitions = map[string][]string{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusServed, StatusCancelled},
	StatusServed:    {StatusCancelled},
	StatusPaid:      {},
	StatusCancelled: {},
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// IsTerminalStatus reports whether s is a terminal order status.
func IsTerminalStatus(s string) bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanTransition reports whether a staff action may move an order from one
// status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderLine is a single menu item entry within an order. The price is captured
// from the menu at order time and never follows later menu edits. Lines are
// never updated in place; editing an order replaces its whole line set.
type OrderLine struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID    string  `json:"order_id" gorm:"index;type:varchar(36)"`
	MenuItemID string  `json:"menu_item_id" gorm:"type:varchar(36)" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	Price      float64 `json:"price"`
	Notes      string  `json:"notes" validate:"omitempty,max=255"`
}

// Order represents a customer's tab against one table.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	TableID     string      `json:"table_id" gorm:"type:varchar(36)" validate:"required"`
	UserID      string      `json:"user_id" gorm:"type:varchar(36)"`
	Lines       []OrderLine `json:"lines" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
