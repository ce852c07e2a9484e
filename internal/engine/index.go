package engine

import (
	"orderbook/internal/common"

	"github.com/shopspring/decimal"
)

// location is where a resting order lives. The index only points at the
// owning level; the order itself is stored there.
type location struct {
	side  common.Side
	price decimal.Decimal
}

// orderIndex maps a resting order id to its location.
type orderIndex map[uint64]location

func (idx orderIndex) add(id uint64, side common.Side, price decimal.Decimal) {
	idx[id] = location{side: side, price: price}
}

func (idx orderIndex) get(id uint64) (location, bool) {
	loc, ok := idx[id]
	return loc, ok
}

func (idx orderIndex) remove(id uint64) {
	delete(idx, id)
}
