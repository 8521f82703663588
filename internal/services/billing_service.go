package services

import (
	"fmt"
	"log"
	"math"

	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/repositories"
)

// DefaultSettlementEpsilon absorbs floating rounding when deciding whether an
// order is fully paid: a remaining due at or below this is treated as zero.
const DefaultSettlementEpsilon = 0.01

// PaymentRequest is the payload for recording or editing a payment. Tendered
// only applies to cash and is not persisted; it is used to validate the clerk
// collected enough and to report the change.
type PaymentRequest struct {
	OrderID  string  `json:"order_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Method   string  `json:"payment_method" validate:"required,oneof=cash card transfer other"`
	Tendered float64 `json:"tendered" validate:"omitempty,gte=0"`
}

// PendingBill is an unsettled order as the cashier sees it.
type PendingBill struct {
	OrderID   string  `json:"order_id"`
	TableID   string  `json:"table_id"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
	Paid      float64 `json:"paid"`
	Due       float64 `json:"due"`
	CreatedAt string  `json:"created_at"`
}

// BillingService owns the payment ledger and the settlement rule. Every
// payment mutation re-reads the order status from the repository immediately
// before writing, so two cashiers cannot both slip a payment past a
// just-settled order on stale screens.
type BillingService struct {
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepository
	epsilon     float64
}

// NewBillingService creates a new BillingService. A non-positive epsilon falls
// back to DefaultSettlementEpsilon.
func NewBillingService(orderRepo repositories.OrderRepository, paymentRepo repositories.PaymentRepository, epsilon float64) *BillingService {
	if epsilon <= 0 {
		epsilon = DefaultSettlementEpsilon
	}
	return &BillingService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		epsilon:     epsilon,
	}
}

// ListPayments retrieves all payments, newest first.
func (s *BillingService) ListPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}

// AmountPaid sums the currently existing payment rows for an order. Always
// recomputed from source; no running counter to drift.
func (s *BillingService) AmountPaid(orderID string) (float64, error) {
	payments, err := s.paymentRepo.GetByOrderID(orderID)
	if err != nil {
		return 0, err
	}
	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	return Round2(paid), nil
}

// AmountDue returns max(0, total - paid) for an order.
func (s *BillingService) AmountDue(orderID string) (float64, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return 0, err
	}
	paid, err := s.AmountPaid(orderID)
	if err != nil {
		return 0, err
	}
	return Round2(math.Max(0, order.TotalAmount-paid)), nil
}

// PendingBills lists non-terminal orders that still owe something.
func (s *BillingService) PendingBills() ([]PendingBill, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	bills := make([]PendingBill, 0)
	for _, order := range orders {
		if models.IsTerminalStatus(order.Status) {
			continue
		}
		paid, err := s.AmountPaid(order.ID)
		if err != nil {
			return nil, err
		}
		due := Round2(math.Max(0, order.TotalAmount-paid))
		if due <= 0 {
			continue
		}
		bills = append(bills, PendingBill{
			OrderID:   order.ID,
			TableID:   order.TableID,
			Status:    order.Status,
			Total:     order.TotalAmount,
			Paid:      paid,
			Due:       due,
			CreatedAt: order.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return bills, nil
}

// RecordPayment validates and records a payment against an order, then
// re-evaluates settlement. Settlement is best-effort: if the re-evaluation
// read fails the payment stays recorded, the failure is logged and the order
// keeps its prior status until the next evaluation.
func (s *BillingService) RecordPayment(req PaymentRequest) (*models.Payment, float64, error) {
	if req.Amount <= 0 {
		return nil, 0, fmt.Errorf("%w: got %.2f", ErrInvalidAmount, req.Amount)
	}
	if !models.IsValidMethod(req.Method) {
		return nil, 0, fmt.Errorf("invalid payment method: %s", req.Method)
	}
	if req.Method == models.MethodCash && req.Tendered > 0 && req.Tendered < req.Amount {
		return nil, 0, fmt.Errorf("%w: tendered %.2f for amount %.2f", ErrInsufficientTendered, req.Tendered, req.Amount)
	}

	order, due, err := s.guardMutable(req.OrderID)
	if err != nil {
		return nil, 0, err
	}
	if req.Amount > due+s.epsilon {
		return nil, 0, fmt.Errorf("%w: amount %.2f, due %.2f", ErrAmountExceedsDue, req.Amount, due)
	}

	payment := &models.Payment{
		OrderID: order.ID,
		Amount:  Round2(req.Amount),
		Method:  req.Method,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, 0, fmt.Errorf("failed to record payment: %w", err)
	}

	s.settleIfFullyPaid(order.ID)

	change := 0.0
	if req.Method == models.MethodCash && req.Tendered > 0 {
		change = Change(req.Tendered, payment.Amount)
	}
	return payment, change, nil
}

// UpdatePayment edits the amount or method of a payment on a still-unsettled
// order, then re-evaluates settlement.
func (s *BillingService) UpdatePayment(id string, req PaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidAmount, req.Amount)
	}
	if !models.IsValidMethod(req.Method) {
		return nil, fmt.Errorf("invalid payment method: %s", req.Method)
	}

	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	order, due, err := s.guardMutable(payment.OrderID)
	if err != nil {
		return nil, err
	}
	// The payment being edited is part of the current paid sum; its own amount
	// counts back toward what may be charged.
	if req.Amount > due+payment.Amount+s.epsilon {
		return nil, fmt.Errorf("%w: amount %.2f, due %.2f", ErrAmountExceedsDue, req.Amount, Round2(due+payment.Amount))
	}

	payment.Amount = Round2(req.Amount)
	payment.Method = req.Method
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}

	s.settleIfFullyPaid(order.ID)
	return payment, nil
}

// DeletePayment removes a payment from a still-unsettled order.
func (s *BillingService) DeletePayment(id string) error {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}

	if _, _, err := s.guardMutable(payment.OrderID); err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(id); err != nil {
		return err
	}

	// A deletion can only raise the due, but the rule is re-run after every
	// ledger mutation so a previously skipped settlement gets another chance.
	s.settleIfFullyPaid(payment.OrderID)
	return nil
}

// guardMutable re-reads the order and its ledger and rejects mutation when the
// order is paid or cancelled. A failed read here fails the whole operation; no
// payment is ever written without a fresh status check.
func (s *BillingService) guardMutable(orderID string) (*models.Order, float64, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, 0, err
	}
	if order.Status == models.StatusPaid {
		return nil, 0, fmt.Errorf("%w: order %s", ErrSettledOrderLocked, orderID)
	}
	if order.Status == models.StatusCancelled {
		return nil, 0, fmt.Errorf("%w: order %s is cancelled", ErrOrderClosed, orderID)
	}

	paid, err := s.AmountPaid(orderID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return order, Round2(math.Max(0, order.TotalAmount-paid)), nil
}

// settleIfFullyPaid re-reads the order and its ledger and marks the order paid
// once the due is within epsilon of zero. Failures are logged and swallowed;
// settlement is idempotent and will be re-evaluated on the next mutation.
func (s *BillingService) settleIfFullyPaid(orderID string) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		log.Printf("Warning: settlement check skipped for order %s: %v", orderID, err)
		return
	}
	if order.Status == models.StatusPaid {
		return
	}

	paid, err := s.AmountPaid(orderID)
	if err != nil {
		log.Printf("Warning: settlement check skipped for order %s: %v", orderID, err)
		return
	}

	due := order.TotalAmount - paid
	if due > s.epsilon {
		return
	}
	if err := s.orderRepo.UpdateStatus(orderID, models.StatusPaid); err != nil {
		log.Printf("Warning: failed to settle order %s: %v", orderID, err)
	}
}
