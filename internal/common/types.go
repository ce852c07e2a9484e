package common

import "fmt"

type Side int

const (
	// Bid orders buy the order asset and rest on the bid side, best
	// (highest) price first.
	Bid Side = iota
	// Ask orders sell the order asset and rest on the ask side, best
	// (lowest) price first.
	Ask
)

// Opposite returns the side an order of this side matches against.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

func (s Side) String() string {
	switch s {
	case Bid:
		return "bid"
	case Ask:
		return "ask"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

type OrderType int

const (
	// Limit orders are an order to buy or sell at a specified price or
	// better. Whatever is left after matching rests on the book.
	Limit OrderType = iota
	// Market orders execute immediately against whatever is resting on
	// the opposite side, at any price. They never rest.
	Market
)

func (t OrderType) String() string {
	switch t {
	case Limit:
		return "limit"
	case Market:
		return "market"
	}
	return fmt.Sprintf("type(%d)", int(t))
}
