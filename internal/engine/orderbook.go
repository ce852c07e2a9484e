package engine

import (
	"time"

	"orderbook/internal/common"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Orderbook is a limit order book for one order asset / price asset pair.
//
// It is not safe for concurrent use. Every mutation goes through Process,
// which runs to completion before returning; callers sharing a book must
// serialize their requests (see the sequencer package).
type Orderbook[A comparable] struct {
	orderAsset A
	priceAsset A

	// Price levels to orders sat on the price level, sorted by time added
	// as they will be push-back'd.
	bids *SideBook[A]
	asks *SideBook[A]

	// Resting order id to the level holding it.
	index orderIndex

	// Last id handed out. Ids start at 1.
	lastID uint64

	logger zerolog.Logger
	clock  func() time.Time
}

// New creates an empty book trading orderAsset quoted in priceAsset. The
// pair is fixed for the lifetime of the book.
func New[A comparable](orderAsset, priceAsset A, opts ...Option) *Orderbook[A] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Orderbook[A]{
		orderAsset: orderAsset,
		priceAsset: priceAsset,
		bids:       newSideBook[A](common.Bid),
		asks:       newSideBook[A](common.Ask),
		index:      make(orderIndex),
		logger:     o.logger,
		clock:      o.clock,
	}
}

// Pair returns the order asset and price asset of the book.
func (book *Orderbook[A]) Pair() (A, A) {
	return book.orderAsset, book.priceAsset
}

// Process applies a request to the book and returns its outcomes in the
// order they happened. Failures are returned inline; Process never panics
// on a bad request and a request failing validation changes nothing.
func (book *Orderbook[A]) Process(req common.Request[A]) []common.Result {
	if err := book.validate(req); err != nil {
		book.logger.Warn().
			Err(err).
			Stringer("request", req.GetType()).
			Msg("request rejected")
		return []common.Result{common.Fail(err)}
	}

	switch r := req.(type) {
	case common.NewOrderRequest[A]:
		return book.placeOrder(r)
	case *common.NewOrderRequest[A]:
		return book.placeOrder(*r)
	case common.AmendOrderRequest[A]:
		return book.amendOrder(r)
	case *common.AmendOrderRequest[A]:
		return book.amendOrder(*r)
	case common.CancelOrderRequest[A]:
		return book.cancelOrder(r)
	case *common.CancelOrderRequest[A]:
		return book.cancelOrder(*r)
	}
	return []common.Result{common.Fail(common.NewValidationError(common.ErrUnknownRequest))}
}

func (book *Orderbook[A]) validate(req common.Request[A]) error {
	orderAsset, priceAsset := req.Assets()
	if orderAsset != book.orderAsset || priceAsset != book.priceAsset {
		return common.NewValidationError(common.ErrAssetMismatch)
	}
	return req.Validate()
}

// placeOrder handles a new limit or market order. The order is accepted,
// swept against the opposite side and, for a limit order, whatever is left
// rests at its limit price. Market order remainders are dropped.
func (book *Orderbook[A]) placeOrder(req common.NewOrderRequest[A]) []common.Result {
	book.lastID++
	now := book.clock()

	order := &common.Order[A]{
		ID:         book.lastID,
		OrderAsset: req.OrderAsset,
		PriceAsset: req.PriceAsset,
		Side:       req.Side,
		Price:      req.Price,
		Qty:        req.Qty,
	}

	results := []common.Result{common.Ok(common.Accepted{
		ID:        order.ID,
		Side:      order.Side,
		OrderType: req.OrderType,
		Qty:       req.Qty,
		Timestamp: now,
	})}
	book.logger.Debug().
		Uint64("id", order.ID).
		Stringer("side", order.Side).
		Stringer("type", req.OrderType).
		Stringer("qty", order.Qty).
		Msg("order accepted")

	fills := book.match(order, req.OrderType, now)
	results = append(results, fills...)

	if !order.Qty.IsPositive() {
		return results
	}
	switch req.OrderType {
	case common.Limit:
		book.rest(order)
	case common.Market:
		if len(fills) == 0 {
			results = append(results, common.Fail(&common.NoMatchError{OrderID: order.ID}))
		}
	}
	return results
}

// cancelOrder removes a resting order, wherever it sits in its level.
func (book *Orderbook[A]) cancelOrder(req common.CancelOrderRequest[A]) []common.Result {
	if _, ok := book.unrest(req.ID); !ok {
		return []common.Result{common.Fail(&common.OrderNotFoundError{OrderID: req.ID})}
	}
	book.logger.Debug().Uint64("id", req.ID).Msg("order cancelled")
	return []common.Result{common.Ok(common.Cancelled{
		OrderID:   req.ID,
		Timestamp: book.clock(),
	})}
}

// amendOrder replaces side, price and quantity of a resting order. The
// order is taken out and re-inserted at the tail of its new level, losing
// its time priority even when the price did not change. An amend that
// crosses the opposite side is matched like a new limit order under the
// same id before the remainder rests.
func (book *Orderbook[A]) amendOrder(req common.AmendOrderRequest[A]) []common.Result {
	order, ok := book.unrest(req.ID)
	if !ok {
		return []common.Result{common.Fail(&common.OrderNotFoundError{OrderID: req.ID})}
	}
	now := book.clock()

	order.Side = req.Side
	order.Price = req.Price
	order.Qty = req.Qty

	results := []common.Result{common.Ok(common.Amended{
		OrderID:   order.ID,
		Side:      order.Side,
		Price:     order.Price,
		Qty:       order.Qty,
		Timestamp: now,
	})}
	book.logger.Debug().
		Uint64("id", order.ID).
		Stringer("side", order.Side).
		Stringer("price", order.Price).
		Stringer("qty", order.Qty).
		Msg("order amended")

	results = append(results, book.match(order, common.Limit, now)...)
	if order.Qty.IsPositive() {
		book.rest(order)
	}
	return results
}

// rest places the order at the tail of the level at its limit price.
func (book *Orderbook[A]) rest(order *common.Order[A]) {
	book.sideBook(order.Side).Insert(order)
	book.index.add(order.ID, order.Side, order.Price)
	book.logger.Debug().
		Uint64("id", order.ID).
		Stringer("side", order.Side).
		Stringer("price", order.Price).
		Stringer("qty", order.Qty).
		Msg("order resting")
}

// unrest takes a resting order out of both the level holding it and the
// index.
func (book *Orderbook[A]) unrest(id uint64) (*common.Order[A], bool) {
	loc, ok := book.index.get(id)
	if !ok {
		return nil, false
	}
	order, ok := book.sideBook(loc.side).Remove(id, loc.price)
	book.index.remove(id)
	return order, ok
}

func (book *Orderbook[A]) sideBook(side common.Side) *SideBook[A] {
	if side == common.Bid {
		return book.bids
	}
	return book.asks
}

// CurrentSpread returns the best bid and best ask prices. ok is false when
// either side is empty.
func (book *Orderbook[A]) CurrentSpread() (bid, ask decimal.Decimal, ok bool) {
	bestBid, bidOk := book.bids.Best()
	bestAsk, askOk := book.asks.Best()
	if !bidOk || !askOk {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	return bestBid.Price(), bestAsk.Price(), true
}

// Order returns a copy of the resting order with the given id.
func (book *Orderbook[A]) Order(id uint64) (common.Order[A], bool) {
	loc, ok := book.index.get(id)
	if !ok {
		return common.Order[A]{}, false
	}
	level, ok := book.sideBook(loc.side).Level(loc.price)
	if !ok {
		return common.Order[A]{}, false
	}
	order, ok := level.Find(id)
	if !ok {
		return common.Order[A]{}, false
	}
	return *order, true
}

// Len returns the number of resting orders.
func (book *Orderbook[A]) Len() int {
	return len(book.index)
}
