package engine

import (
	"time"

	"github.com/rs/zerolog"
)

type options struct {
	logger zerolog.Logger
	clock  func() time.Time
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
		clock:  time.Now,
	}
}

type Option func(*options)

// WithLogger sets the logger the book reports accepted, resting, amended,
// cancelled and rejected orders to. Books are silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the source of event timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}
