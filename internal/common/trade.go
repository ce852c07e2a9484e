package common

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Fill reports quantity of one order executed in a single match step. A
// match step always produces two fills, the incoming order's first, both
// with the same price and quantity.
type Fill struct {
	OrderID   uint64
	Side      Side
	OrderType OrderType
	Price     decimal.Decimal // Always the resting order's price
	Qty       decimal.Decimal // Matched in this step
	Timestamp time.Time
}

// Filled means the order has no quantity left.
type Filled struct{ Fill }

// PartiallyFilled means the order still has quantity left after the step.
type PartiallyFilled struct{ Fill }

func (e Filled) GetOrderID() uint64          { return e.OrderID }
func (e PartiallyFilled) GetOrderID() uint64 { return e.OrderID }

func (e Filled) String() string {
	return fmt.Sprintf("Filled{order_id: %d, side: %v, price: %s, qty: %s}",
		e.OrderID, e.Side, e.Price, e.Qty)
}

func (e PartiallyFilled) String() string {
	return fmt.Sprintf("PartiallyFilled{order_id: %d, side: %v, price: %s, qty: %s}",
		e.OrderID, e.Side, e.Price, e.Qty)
}
