package service

import (
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/metrics"
	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

// DefaultLookbackDays is the trailing window analysed when no range is given
const DefaultLookbackDays = 30

// Clock returns the current time
type Clock func() time.Time

type options struct {
	now          Clock
	lookbackDays int
	metrics      *metrics.Manager
}

// Option configures a service
type Option func(*options)

// WithClock replaces time.Now
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.now = c
		}
	}
}

// WithLookbackDays sets the trailing analysis window
func WithLookbackDays(days int) Option {
	return func(o *options) {
		if days > 0 {
			o.lookbackDays = days
		}
	}
}

// WithMetrics records domain counters on m
func WithMetrics(m *metrics.Manager) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:          time.Now,
		lookbackDays: DefaultLookbackDays,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) today() models.Date {
	return models.NewDate(o.now())
}

// window is the trailing lookback ending today
func (o options) window() models.AnalysisPeriod {
	today := o.today()
	return models.AnalysisPeriod{Start: today.AddDays(-o.lookbackDays), End: today}
}
