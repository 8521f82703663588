package repositories

import (
	"fmt"
	"time"

	"github.com/automatamexico/Restaurante/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{
		db: db,
	}
}

// GetAll retrieves all payments, newest first.
func (r *GORMPaymentRepository) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all payments: %w", err)
	}
	return payments, nil
}

// GetByID retrieves a single payment by its ID.
func (r *GORMPaymentRepository) GetByID(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get payment by ID %s: %w", id, err)
	}
	return &payment, nil
}

// GetByOrderID retrieves every payment recorded against an order.
func (r *GORMPaymentRepository) GetByOrderID(orderID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments for order %s: %w", orderID, err)
	}
	return payments, nil
}

// SumSince returns the sum of payment amounts created at or after t.
func (r *GORMPaymentRepository) SumSince(t time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Payment{}).
		Where("created_at >= ?", t).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}

// Create creates a new payment. CreatedAt is assigned here, not by the caller.
func (r *GORMPaymentRepository) Create(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.CreatedAt = time.Now()
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// Update updates the amount and method of an existing payment.
func (r *GORMPaymentRepository) Update(payment *models.Payment) error {
	res := r.db.Model(&models.Payment{}).Where("id = ?", payment.ID).Updates(map[string]interface{}{
		"amount": payment.Amount,
		"method": payment.Method,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment with ID %s not found for update", payment.ID)
	}
	return nil
}

// Delete deletes a payment by its ID.
func (r *GORMPaymentRepository) Delete(id string) error {
	res := r.db.Delete(&models.Payment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment with ID %s not found for deletion", id)
	}
	return nil
}
