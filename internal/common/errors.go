package common

import (
	"errors"
	"fmt"
)

// Validation reasons.
var (
	ErrAssetMismatch    = errors.New("asset pair does not match the book")
	ErrNonPositiveQty   = errors.New("quantity must be positive")
	ErrNonPositivePrice = errors.New("price must be positive")
	ErrUnknownRequest   = errors.New("unknown request type")
)

// ValidationError rejects a malformed request. A rejected request has no
// effect on the book.
type ValidationError struct {
	Reason error
}

func NewValidationError(reason error) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// NoMatchError reports a market order that found nothing to match against.
// The order was still accepted and its id consumed.
type NoMatchError struct {
	OrderID uint64
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no match for order %d", e.OrderID)
}

// OrderNotFoundError reports an amend or cancel of an id that is not
// resting: never existed, already filled or already cancelled.
type OrderNotFoundError struct {
	OrderID uint64
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %d not found", e.OrderID)
}
