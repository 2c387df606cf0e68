package driver

import (
	"context"
	"sync"
	"time"
)

// Result captures execution summary.
type Result struct {
	Launched int
	Duration time.Duration
}

// Driver launches one goroutine per task, pacing launches with a rate
// limiter, and joins every launched goroutine before returning.
type Driver struct {
	opt Options
}

func New(opt Options) *Driver {
	opt.normalize()
	return &Driver{opt: opt}
}

// Run launches tasks in order and blocks until every launched task has
// returned. Cancelling ctx stops further launches; tasks already in
// flight are still joined before Run returns.
func (d *Driver) Run(ctx context.Context, tasks []Task) Result {
	start := time.Now()
	limiter := d.opt.LimiterFactory(d.opt.Stagger)

	var wg sync.WaitGroup
	launched := 0
	for _, task := range tasks {
		if task == nil {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		launched++
		wg.Add(1)
		go func() {
			defer wg.Done()
			task(ctx)
		}()
	}
	wg.Wait()

	return Result{
		Launched: launched,
		Duration: time.Since(start),
	}
}
