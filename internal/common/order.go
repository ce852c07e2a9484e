package common

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Order is an order resting in the book. Its storage is owned by the price
// level holding it; everything else refers to it by ID.
type Order[A comparable] struct {
	ID         uint64          // Book assigned order id
	OrderAsset A               // Asset being bought or sold
	PriceAsset A               // Asset the price is quoted in
	Side       Side            // Order side
	Price      decimal.Decimal // Limit price
	Qty        decimal.Decimal // Remaining quantity
}

func (order Order[A]) String() string {
	return fmt.Sprintf(
		`ID:         %d
OrderAsset: %v
PriceAsset: %v
Side:       %v
Price:      %s
Qty:        %s`,
		order.ID,
		order.OrderAsset,
		order.PriceAsset,
		order.Side,
		order.Price,
		order.Qty,
	)
}
