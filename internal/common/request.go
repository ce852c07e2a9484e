package common

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RequestType int

const (
	NewOrder RequestType = iota
	AmendOrder
	CancelOrder
)

func (t RequestType) String() string {
	switch t {
	case NewOrder:
		return "new"
	case AmendOrder:
		return "amend"
	case CancelOrder:
		return "cancel"
	}
	return fmt.Sprintf("request(%d)", int(t))
}

// Request is a command submitted to an order book. Requests are immutable
// values; build them with the New*Request constructors.
type Request[A comparable] interface {
	GetType() RequestType
	// Assets returns the order asset and price asset the request refers to.
	Assets() (A, A)
	// Validate checks the request in isolation, without looking at any book.
	Validate() error
}

// Generic request fields.
type BaseRequest[A comparable] struct {
	OrderAsset A
	PriceAsset A
	Timestamp  time.Time // Caller supplied, never compared by the book
}

func (r BaseRequest[A]) Assets() (A, A) {
	return r.OrderAsset, r.PriceAsset
}

type NewOrderRequest[A comparable] struct {
	BaseRequest[A]
	OrderType OrderType
	Side      Side
	Price     decimal.Decimal // Zero for market orders
	Qty       decimal.Decimal
}

func (NewOrderRequest[A]) GetType() RequestType { return NewOrder }

func (r NewOrderRequest[A]) Validate() error {
	if !r.Qty.IsPositive() {
		return NewValidationError(ErrNonPositiveQty)
	}
	if r.OrderType == Limit && !r.Price.IsPositive() {
		return NewValidationError(ErrNonPositivePrice)
	}
	return nil
}

type AmendOrderRequest[A comparable] struct {
	BaseRequest[A]
	ID    uint64
	Side  Side
	Price decimal.Decimal
	Qty   decimal.Decimal
}

func (AmendOrderRequest[A]) GetType() RequestType { return AmendOrder }

func (r AmendOrderRequest[A]) Validate() error {
	if !r.Qty.IsPositive() {
		return NewValidationError(ErrNonPositiveQty)
	}
	if !r.Price.IsPositive() {
		return NewValidationError(ErrNonPositivePrice)
	}
	return nil
}

type CancelOrderRequest[A comparable] struct {
	BaseRequest[A]
	ID   uint64
	Side Side
}

func (CancelOrderRequest[A]) GetType() RequestType { return CancelOrder }

func (CancelOrderRequest[A]) Validate() error { return nil }

func NewLimitOrderRequest[A comparable](
	orderAsset, priceAsset A,
	side Side,
	price, qty decimal.Decimal,
	ts time.Time,
) NewOrderRequest[A] {
	return NewOrderRequest[A]{
		BaseRequest: BaseRequest[A]{OrderAsset: orderAsset, PriceAsset: priceAsset, Timestamp: ts},
		OrderType:   Limit,
		Side:        side,
		Price:       price,
		Qty:         qty,
	}
}

func NewMarketOrderRequest[A comparable](
	orderAsset, priceAsset A,
	side Side,
	qty decimal.Decimal,
	ts time.Time,
) NewOrderRequest[A] {
	return NewOrderRequest[A]{
		BaseRequest: BaseRequest[A]{OrderAsset: orderAsset, PriceAsset: priceAsset, Timestamp: ts},
		OrderType:   Market,
		Side:        side,
		Qty:         qty,
	}
}

// NewAmendOrderRequest replaces side, price and quantity of resting order id.
// The amended order loses its time priority.
func NewAmendOrderRequest[A comparable](
	id uint64,
	orderAsset, priceAsset A,
	side Side,
	price, qty decimal.Decimal,
	ts time.Time,
) AmendOrderRequest[A] {
	return AmendOrderRequest[A]{
		BaseRequest: BaseRequest[A]{OrderAsset: orderAsset, PriceAsset: priceAsset, Timestamp: ts},
		ID:          id,
		Side:        side,
		Price:       price,
		Qty:         qty,
	}
}

func NewCancelOrderRequest[A comparable](
	id uint64,
	orderAsset, priceAsset A,
	side Side,
	ts time.Time,
) CancelOrderRequest[A] {
	return CancelOrderRequest[A]{
		BaseRequest: BaseRequest[A]{OrderAsset: orderAsset, PriceAsset: priceAsset, Timestamp: ts},
		ID:          id,
		Side:        side,
	}
}
