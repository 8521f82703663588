package models

import "time"

// Payment methods accepted by the cashier.
const (
	MethodCash     = "cash"
	MethodCard     = "card"
	MethodTransfer = "transfer"
	MethodOther    = "other"
)

// IsValidMethod reports whether m is a known payment method.
func IsValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodOther:
		return true
	}
	return false
}

// Payment is one recorded amount applied against an order's total. CreatedAt is
// system-assigned. Once the owning order settles, the row is frozen: the billing
// service rejects any further create, update or delete against that order.
type Payment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"order_id" gorm:"index;type:varchar(36)" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Method    string    `json:"payment_method" validate:"required,oneof=cash card transfer other"`
	CreatedAt time.Time `json:"created_at"`
}
