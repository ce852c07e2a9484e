package engine

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Level is the aggregated view of one price level.
type Level struct {
	Price  decimal.Decimal
	Qty    decimal.Decimal // Total remaining quantity at the price
	Orders int
}

// Depth is the aggregated view of the book, best levels first on both sides.
type Depth struct {
	Bids []Level
	Asks []Level
}

// Depth returns up to limit levels per side, best first. A limit of zero or
// less returns every level.
func (book *Orderbook[A]) Depth(limit int) Depth {
	return Depth{
		Bids: book.bids.depth(limit),
		Asks: book.asks.depth(limit),
	}
}

func (s *SideBook[A]) depth(limit int) []Level {
	levels := make([]*PriceLevel[A], 0, s.levels.Len())
	s.levels.Scan(func(level *PriceLevel[A]) bool {
		levels = append(levels, level)
		return limit <= 0 || len(levels) < limit
	})
	return lo.Map(levels, func(level *PriceLevel[A], _ int) Level {
		return Level{
			Price:  level.Price(),
			Qty:    level.Volume(),
			Orders: level.Len(),
		}
	})
}
