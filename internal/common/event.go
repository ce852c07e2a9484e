package common

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Success is a successful outcome of a request: Accepted, Filled,
// PartiallyFilled, Cancelled or Amended.
type Success interface {
	GetOrderID() uint64
}

type Accepted struct {
	ID        uint64
	Side      Side
	OrderType OrderType
	Qty       decimal.Decimal // Initial quantity
	Timestamp time.Time
}

type Cancelled struct {
	OrderID   uint64
	Timestamp time.Time
}

type Amended struct {
	OrderID   uint64
	Side      Side
	Price     decimal.Decimal
	Qty       decimal.Decimal
	Timestamp time.Time
}

func (e Accepted) GetOrderID() uint64  { return e.ID }
func (e Cancelled) GetOrderID() uint64 { return e.OrderID }
func (e Amended) GetOrderID() uint64   { return e.OrderID }

func (e Accepted) String() string {
	return fmt.Sprintf("Accepted{id: %d, side: %v, type: %v, qty: %s}", e.ID, e.Side, e.OrderType, e.Qty)
}

func (e Cancelled) String() string {
	return fmt.Sprintf("Cancelled{order_id: %d}", e.OrderID)
}

func (e Amended) String() string {
	return fmt.Sprintf("Amended{order_id: %d, side: %v, price: %s, qty: %s}", e.OrderID, e.Side, e.Price, e.Qty)
}

// Result is one entry of the outcome list of a request. Exactly one of
// Success and Err is set.
type Result struct {
	Success Success
	Err     error
}

func Ok(s Success) Result {
	return Result{Success: s}
}

func Fail(err error) Result {
	return Result{Err: err}
}

func (r Result) IsOk() bool {
	return r.Err == nil
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Err(%v)", r.Err)
	}
	return fmt.Sprintf("Ok(%v)", r.Success)
}

// Successes returns the successful outcomes of results, in order.
func Successes(results []Result) []Success {
	return lo.FilterMap(results, func(r Result, _ int) (Success, bool) {
		return r.Success, r.IsOk()
	})
}

// Errors returns the failures of results, in order.
func Errors(results []Result) []error {
	return lo.FilterMap(results, func(r Result, _ int) (error, bool) {
		return r.Err, !r.IsOk()
	})
}
