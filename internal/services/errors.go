package services

import "errors"

// Sentinel errors for the order and payment lifecycle. Services wrap these with
// context via fmt.Errorf("%w: ...") and handlers map them to HTTP statuses with
// errors.Is.
var (
	// ErrSettledOrderLocked rejects any payment create, update or delete
	// against an order that has already settled.
	ErrSettledOrderLocked = errors.New("order is already paid; its payments are locked")

	// ErrOrderClosed rejects edits and payments against a terminal order.
	ErrOrderClosed = errors.New("order is closed")

	// ErrBackendUnavailable signals that a read required before a write could
	// not be completed, so the write was not attempted.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInvalidTransition rejects a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// Validation errors, surfaced before any write.
	ErrInvalidAmount        = errors.New("payment amount must be greater than zero")
	ErrAmountExceedsDue     = errors.New("payment amount exceeds the amount due")
	ErrInsufficientTendered = errors.New("tendered amount must cover the payment amount")
	ErrInvalidQuantity      = errors.New("line quantity must be a positive integer")
	ErrEmptyOrder           = errors.New("an order needs at least one line")
)
