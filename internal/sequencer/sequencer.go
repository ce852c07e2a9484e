// Package sequencer puts a single writer in front of an order book.
//
// The book itself has no locks. A Sequencer owns one book and a task queue
// drained by a single goroutine, so requests from any number of callers are
// applied one at a time in the order they were queued.
package sequencer

import (
	"context"
	"errors"

	"orderbook/internal/common"
	"orderbook/internal/engine"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	tomb "gopkg.in/tomb.v2"
)

const (
	DefaultQueueSize = 100
)

var (
	ErrSequencerStopped = errors.New("sequencer stopped")
)

type task[A comparable] struct {
	id   uuid.UUID
	name string
	run  func(book *engine.Orderbook[A])
	done chan struct{}
}

type Sequencer[A comparable] struct {
	book   *engine.Orderbook[A]
	tasks  chan task[A]
	t      *tomb.Tomb
	logger zerolog.Logger
}

type options struct {
	queueSize int
	logger    zerolog.Logger
}

type Option func(*options)

// WithQueueSize sets how many requests may wait for the writer before
// Submit blocks.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.queueSize = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New starts the writer goroutine for book. It runs until Stop is called or
// ctx is done. The book must not be used directly while the sequencer runs.
func New[A comparable](ctx context.Context, book *engine.Orderbook[A], opts ...Option) *Sequencer[A] {
	o := options{
		queueSize: DefaultQueueSize,
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(&o)
	}

	t, _ := tomb.WithContext(ctx)
	s := &Sequencer[A]{
		book:   book,
		tasks:  make(chan task[A], o.queueSize),
		t:      t,
		logger: o.logger,
	}
	t.Go(s.writer)
	return s
}

// writer applies queued tasks to the book one at a time.
func (s *Sequencer[A]) writer() error {
	s.logger.Info().Msg("sequencer running")
	for {
		select {
		case <-s.t.Dying():
			s.logger.Info().Msg("sequencer shutting down")
			return nil
		case task := <-s.tasks:
			task.run(s.book)
			close(task.done)
			s.logger.Debug().
				Str("task", task.id.String()).
				Str("name", task.name).
				Msg("task done")
		}
	}
}

// do queues fn and waits for the writer to run it. Once fn is queued it
// runs even if ctx ends first; the caller just stops waiting.
func (s *Sequencer[A]) do(ctx context.Context, name string, fn func(book *engine.Orderbook[A])) error {
	t := task[A]{
		id:   uuid.New(),
		name: name,
		run:  fn,
		done: make(chan struct{}),
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-s.t.Dying():
		return ErrSequencerStopped
	default:
	}

	select {
	case s.tasks <- t:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.t.Dying():
		return ErrSequencerStopped
	}

	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.t.Dying():
		// The writer may have finished the task before noticing.
		select {
		case <-t.done:
			return nil
		default:
			return ErrSequencerStopped
		}
	}
}

// Submit applies req to the book and returns its outcomes.
func (s *Sequencer[A]) Submit(ctx context.Context, req common.Request[A]) ([]common.Result, error) {
	var results []common.Result
	err := s.do(ctx, req.GetType().String(), func(book *engine.Orderbook[A]) {
		results = book.Process(req)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Spread returns the current spread of the book.
func (s *Sequencer[A]) Spread(ctx context.Context) (bid, ask decimal.Decimal, ok bool, err error) {
	var b, a decimal.Decimal
	var found bool
	err = s.do(ctx, "spread", func(book *engine.Orderbook[A]) {
		b, a, found = book.CurrentSpread()
	})
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, false, err
	}
	return b, a, found, nil
}

// Depth returns the aggregated depth of the book, see engine.Orderbook.Depth.
func (s *Sequencer[A]) Depth(ctx context.Context, limit int) (engine.Depth, error) {
	var depth engine.Depth
	err := s.do(ctx, "depth", func(book *engine.Orderbook[A]) {
		depth = book.Depth(limit)
	})
	if err != nil {
		return engine.Depth{}, err
	}
	return depth, nil
}

// Stop stops the writer and waits for it to exit. Requests still queued are
// dropped.
func (s *Sequencer[A]) Stop() error {
	s.t.Kill(nil)
	return s.t.Wait()
}

// Dead is closed once the writer has exited.
func (s *Sequencer[A]) Dead() <-chan struct{} {
	return s.t.Dead()
}
