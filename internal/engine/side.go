package engine

import (
	"orderbook/internal/common"

	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"
)

// SideBook is the ordered set of price levels of one side of the book. The
// best level is always the minimum of the tree: bids are sorted greatest
// first, asks least first.
type SideBook[A comparable] struct {
	side   common.Side
	levels *btree.BTreeG[*PriceLevel[A]]
}

func newSideBook[A comparable](side common.Side) *SideBook[A] {
	less := func(a, b *PriceLevel[A]) bool {
		return a.price.LessThan(b.price)
	}
	if side == common.Bid {
		less = func(a, b *PriceLevel[A]) bool {
			return a.price.GreaterThan(b.price)
		}
	}
	return &SideBook[A]{
		side:   side,
		levels: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
	}
}

func (s *SideBook[A]) Side() common.Side { return s.side }

// Len returns the number of price levels.
func (s *SideBook[A]) Len() int { return s.levels.Len() }

func (s *SideBook[A]) Empty() bool { return s.levels.Len() == 0 }

// Best returns the level visited first when matching against this side.
func (s *SideBook[A]) Best() (*PriceLevel[A], bool) {
	return s.levels.MinMut()
}

// Level returns the level at price, if one exists. The comparator only
// accounts for prices, so a dummy level is enough for the search.
func (s *SideBook[A]) Level(price decimal.Decimal) (*PriceLevel[A], bool) {
	return s.levels.GetMut(&PriceLevel[A]{price: price})
}

// Insert appends the order at the tail of the level at its price, creating
// the level if needed.
func (s *SideBook[A]) Insert(order *common.Order[A]) {
	level, ok := s.Level(order.Price)
	if !ok {
		level = newPriceLevel[A](order.Price)
		s.levels.Set(level)
	}
	level.Push(order)
}

// Remove takes the order out of the level at price and deletes the level if
// it empties.
func (s *SideBook[A]) Remove(id uint64, price decimal.Decimal) (*common.Order[A], bool) {
	level, ok := s.Level(price)
	if !ok {
		return nil, false
	}
	order, ok := level.Remove(id)
	if !ok {
		return nil, false
	}
	s.dropIfEmpty(level)
	return order, true
}

func (s *SideBook[A]) dropIfEmpty(level *PriceLevel[A]) {
	if level.Empty() {
		s.levels.Delete(level)
	}
}

// Levels returns the price levels best first.
func (s *SideBook[A]) Levels() []*PriceLevel[A] {
	return s.levels.Items()
}
