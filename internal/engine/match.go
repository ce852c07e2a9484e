package engine

import (
	"time"

	"orderbook/internal/common"

	"github.com/shopspring/decimal"
)

// match sweeps the incoming order against the opposite side in
// price-time priority until it is filled, the opposite side is empty or,
// for a limit order, the best opposite level no longer crosses the limit.
//
// Every step matches the incoming order against the oldest order of the
// best level, at that resting order's price, and emits the incoming
// order's fill followed by the resting order's fill. Resting orders left
// with nothing are removed from their level and the index; empty levels are
// removed from the side.
func (book *Orderbook[A]) match(incoming *common.Order[A], orderType common.OrderType, now time.Time) []common.Result {
	var results []common.Result
	opposite := book.sideBook(incoming.Side.Opposite())

	for incoming.Qty.IsPositive() {
		level, ok := opposite.Best()
		if !ok {
			break
		}
		if orderType == common.Limit && !crosses(incoming.Side, incoming.Price, level.Price()) {
			break
		}
		resting, ok := level.Head()
		if !ok {
			// Empty levels are never left in the tree.
			opposite.dropIfEmpty(level)
			continue
		}

		price := level.Price()
		matchQty := decimal.Min(incoming.Qty, resting.Qty)
		incoming.Qty = incoming.Qty.Sub(matchQty)
		_, done := level.Fill(matchQty)

		results = append(results,
			fillResult(incoming, orderType, price, matchQty, now),
			fillResult(resting, common.Limit, price, matchQty, now),
		)

		if done {
			book.index.remove(resting.ID)
			opposite.dropIfEmpty(level)
		}
	}
	return results
}

// crosses reports whether an order on side with limit price can trade
// against a level at levelPrice.
func crosses(side common.Side, limit, levelPrice decimal.Decimal) bool {
	if side == common.Bid {
		return levelPrice.LessThanOrEqual(limit)
	}
	return levelPrice.GreaterThanOrEqual(limit)
}

func fillResult[A comparable](order *common.Order[A], orderType common.OrderType, price, qty decimal.Decimal, now time.Time) common.Result {
	fill := common.Fill{
		OrderID:   order.ID,
		Side:      order.Side,
		OrderType: orderType,
		Price:     price,
		Qty:       qty,
		Timestamp: now,
	}
	if order.Qty.IsZero() {
		return common.Ok(common.Filled{Fill: fill})
	}
	return common.Ok(common.PartiallyFilled{Fill: fill})
}
