package repositories

import (
	"time"

	"github.com/automatamexico/Restaurante/internal/models"
)

// PaymentRepository defines the interface for payment data access.
type PaymentRepository interface {
	GetAll() ([]models.Payment, error)
	GetByID(id string) (*models.Payment, error)
	GetByOrderID(orderID string) ([]models.Payment, error)
	SumSince(t time.Time) (float64, error)
	Create(payment *models.Payment) error
	Update(payment *models.Payment) error
	Delete(id string) error
}
