package engine

import (
	"orderbook/internal/common"

	dll "github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/shopspring/decimal"
)

// PriceLevel holds the orders resting at one price on one side, oldest
// first. Orders are only ever appended at the tail; the head is the next to
// match.
type PriceLevel[A comparable] struct {
	price  decimal.Decimal
	orders *dll.List       // *common.Order[A], sorted by time added
	volume decimal.Decimal // Sum of the remaining quantity of orders
}

func newPriceLevel[A comparable](price decimal.Decimal) *PriceLevel[A] {
	return &PriceLevel[A]{
		price:  price,
		orders: dll.New(),
		volume: decimal.Zero,
	}
}

func (level *PriceLevel[A]) Price() decimal.Decimal  { return level.price }
func (level *PriceLevel[A]) Volume() decimal.Decimal { return level.volume }
func (level *PriceLevel[A]) Len() int                { return level.orders.Size() }
func (level *PriceLevel[A]) Empty() bool             { return level.orders.Empty() }

// Push appends an order at the tail of the level.
func (level *PriceLevel[A]) Push(order *common.Order[A]) {
	level.orders.Add(order)
	level.volume = level.volume.Add(order.Qty)
}

// Head returns the oldest order of the level without removing it.
func (level *PriceLevel[A]) Head() (*common.Order[A], bool) {
	v, ok := level.orders.Get(0)
	if !ok {
		return nil, false
	}
	return v.(*common.Order[A]), true
}

// Fill takes qty off the head order, which keeps its position. A head
// left with nothing is removed and returned as done.
func (level *PriceLevel[A]) Fill(qty decimal.Decimal) (order *common.Order[A], done bool) {
	order, ok := level.Head()
	if !ok {
		return nil, false
	}
	order.Qty = order.Qty.Sub(qty)
	level.volume = level.volume.Sub(qty)
	if order.Qty.IsZero() {
		level.orders.Remove(0)
		return order, true
	}
	return order, false
}

// Remove takes the order with the given id out of the level, wherever it
// sits in the queue.
func (level *PriceLevel[A]) Remove(id uint64) (*common.Order[A], bool) {
	it := level.orders.Iterator()
	for it.Next() {
		order := it.Value().(*common.Order[A])
		if order.ID != id {
			continue
		}
		level.orders.Remove(it.Index())
		level.volume = level.volume.Sub(order.Qty)
		return order, true
	}
	return nil, false
}

// Find returns the order with the given id, if it rests on this level.
func (level *PriceLevel[A]) Find(id uint64) (*common.Order[A], bool) {
	_, v := level.orders.Find(func(_ int, v interface{}) bool {
		return v.(*common.Order[A]).ID == id
	})
	if v == nil {
		return nil, false
	}
	return v.(*common.Order[A]), true
}

// Orders returns the orders of the level, oldest first.
func (level *PriceLevel[A]) Orders() []*common.Order[A] {
	orders := make([]*common.Order[A], 0, level.orders.Size())
	level.orders.Each(func(_ int, v interface{}) {
		orders = append(orders, v.(*common.Order[A]))
	})
	return orders
}
