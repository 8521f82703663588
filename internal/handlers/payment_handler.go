package handlers

import (
	"fmt"
	"log"

	"github.com/automatamexico/Restaurante/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for the cashier: payments and pending
// bills. Settlement happens inside the billing service; no route sets an order
// to paid directly.
type PaymentHandler struct {
	service  *services.BillingService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.BillingService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cashier routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Get("/", h.HandleGetPayments)
	paymentRoutes.Post("/", h.HandleRecordPayment)
	paymentRoutes.Put("/:id", h.HandleUpdatePayment)
	paymentRoutes.Delete("/:id", h.HandleDeletePayment)

	router.Get("/bills/pending", h.HandlePendingBills)
	router.Get("/orders/:id/due", h.HandleAmountDue)
}

// HandleGetPayments retrieves all payments, newest first.
func (h *PaymentHandler) HandleGetPayments(c *fiber.Ctx) error {
	payments, err := h.service.ListPayments()
	if err != nil {
		log.Printf("Error getting payments: %v", err)
		return respondError(c, "Could not retrieve payments", err)
	}
	return c.JSON(payments)
}

// HandlePendingBills lists unsettled orders with total, paid and due.
func (h *PaymentHandler) HandlePendingBills(c *fiber.Ctx) error {
	bills, err := h.service.PendingBills()
	if err != nil {
		log.Printf("Error getting pending bills: %v", err)
		return respondError(c, "Could not retrieve pending bills", err)
	}
	return c.JSON(bills)
}

// HandleAmountDue reports the outstanding due for one order.
func (h *PaymentHandler) HandleAmountDue(c *fiber.Ctx) error {
	orderID := c.Params("id")
	due, err := h.service.AmountDue(orderID)
	if err != nil {
		log.Printf("Error computing due for order %s: %v", orderID, err)
		return respondError(c, fmt.Sprintf("Could not compute due for order %s", orderID), err)
	}
	return c.JSON(fiber.Map{
		"order_id": orderID,
		"due":      due,
	})
}

// HandleRecordPayment records a payment against an order.
func (h *PaymentHandler) HandleRecordPayment(c *fiber.Ctx) error {
	var req services.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	payment, change, err := h.service.RecordPayment(req)
	if err != nil {
		log.Printf("Error recording payment for order %s: %v", req.OrderID, err)
		return respondError(c, "Could not record payment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"payment": payment,
		"change":  change,
	})
}

// HandleUpdatePayment edits a payment on a still-unsettled order.
func (h *PaymentHandler) HandleUpdatePayment(c *fiber.Ctx) error {
	paymentID := c.Params("id")

	var req services.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	payment, err := h.service.UpdatePayment(paymentID, req)
	if err != nil {
		log.Printf("Error updating payment %s: %v", paymentID, err)
		return respondError(c, fmt.Sprintf("Could not update payment %s", paymentID), err)
	}

	return c.JSON(payment)
}

// HandleDeletePayment deletes a payment on a still-unsettled order.
func (h *PaymentHandler) HandleDeletePayment(c *fiber.Ctx) error {
	paymentID := c.Params("id")
	if err := h.service.DeletePayment(paymentID); err != nil {
		log.Printf("Error deleting payment %s: %v", paymentID, err)
		return respondError(c, fmt.Sprintf("Could not delete payment %s", paymentID), err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Payment %s deleted successfully", paymentID),
	})
}
