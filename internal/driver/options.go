package driver

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Task performs one scripted call. Tasks report their outcome through
// side effects (printing a result line, recording a span) rather than
// return values, so a failed call never stops the run.
type Task func(ctx context.Context)

// Options configure the Driver.
type Options struct {
	Stagger        time.Duration                             // delay between consecutive launches (0 means launch back to back)
	LimiterFactory func(stagger time.Duration) *rate.Limiter // optional injection for tests
}

func (o *Options) normalize() {
	if o.Stagger < 0 {
		o.Stagger = 0
	}
	if o.LimiterFactory == nil {
		o.LimiterFactory = func(stagger time.Duration) *rate.Limiter {
			if stagger <= 0 {
				return rate.NewLimiter(rate.Inf, 0)
			}
			// Burst of one: the first launch goes out immediately and
			// each later launch waits a full stagger interval.
			return rate.NewLimiter(rate.Every(stagger), 1)
		}
	}
}
