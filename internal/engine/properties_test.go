package engine

import (
	"math/rand"
	"testing"

	"orderbook/internal/common"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomRequest builds a mostly valid request around a mid price of 100 so
// that orders regularly cross.
func randomRequest(rng *rand.Rand, maxID uint64) common.Request[Asset] {
	side := common.Side(rng.Intn(2))
	price := decimal.New(int64(95+rng.Intn(11)), 0).Add(decimal.New(int64(rng.Intn(4)), -1))
	qty := decimal.New(int64(1+rng.Intn(30)), -1)
	id := uint64(rng.Int63n(int64(maxID) + 2))

	switch n := rng.Intn(20); {
	case n < 10:
		return common.NewLimitOrderRequest(BTC, USD, side, price, qty, testTime)
	case n < 13:
		return common.NewMarketOrderRequest(BTC, USD, side, qty, testTime)
	case n < 16:
		return common.NewCancelOrderRequest(id, BTC, USD, side, testTime)
	case n < 19:
		return common.NewAmendOrderRequest(id, BTC, USD, side, price, qty, testTime)
	default:
		return common.NewLimitOrderRequest(BTC, USD, side, price, decimal.Zero, testTime)
	}
}

func TestProcess_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	book := createTestOrderBook()
	var lastID uint64

	for i := 0; i < 5000; i++ {
		res := book.Process(randomRequest(rng, lastID))
		require.NotEmpty(t, res)

		if accepted, ok := res[0].Success.(common.Accepted); ok {
			assert.Equal(t, lastID+1, accepted.ID, "ids are handed out in sequence")
			lastID = accepted.ID
		}

		// Fills come in pairs with identical price and quantity, the
		// incoming order's first.
		var fills []common.Fill
		for _, r := range res {
			switch e := r.Success.(type) {
			case common.Filled:
				fills = append(fills, e.Fill)
			case common.PartiallyFilled:
				fills = append(fills, e.Fill)
			}
		}
		require.Equal(t, 0, len(fills)%2, "unpaired fill in %v", res)
		for j := 0; j < len(fills); j += 2 {
			incoming, resting := fills[j], fills[j+1]
			assert.True(t, incoming.Price.Equal(resting.Price))
			assert.True(t, incoming.Qty.Equal(resting.Qty))
			assert.NotEqual(t, incoming.Side, resting.Side)
			if j > 0 {
				assert.Equal(t, fills[0].OrderID, incoming.OrderID)
			}
		}

		// No crossed book.
		if bid, ask, ok := book.CurrentSpread(); ok {
			require.True(t, bid.LessThan(ask), "crossed book after %d requests: %s >= %s", i, bid, ask)
		}

		// Level aggregates agree with the orders they hold and the index.
		resting := 0
		for _, side := range []*SideBook[Asset]{book.bids, book.asks} {
			for _, level := range side.Levels() {
				require.False(t, level.Empty(), "empty level left in the book")
				sum := decimal.Zero
				for _, order := range level.Orders() {
					sum = sum.Add(order.Qty)
					assert.True(t, order.Qty.IsPositive())
					assert.True(t, order.Price.Equal(level.Price()))
					assert.Equal(t, side.Side(), order.Side)
					loc, ok := book.index.get(order.ID)
					require.True(t, ok, "order %d missing from index", order.ID)
					assert.Equal(t, side.Side(), loc.side)
					assert.True(t, loc.price.Equal(level.Price()))
				}
				assert.True(t, sum.Equal(level.Volume()))
				resting += level.Len()
			}
		}
		require.Equal(t, book.Len(), resting)
	}
}
