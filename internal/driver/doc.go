// Package driver launches scripted calls concurrently, one goroutine
// per call, and waits for all of them to finish.
//
// # Basic Usage
//
// Build a slice of tasks and run them:
//
//	d := driver.New(driver.Options{Stagger: 100 * time.Millisecond})
//	result := d.Run(ctx, tasks)
//
// Launches are paced by a rate limiter so that consecutive goroutines
// start a stagger interval apart, which spreads connection setup and
// keeps output interleaving readable. The first task launches
// immediately.
//
// # Cancellation
//
// Cancelling the context stops new launches. Tasks already running
// receive the cancelled context and are joined before Run returns, so
// the caller never leaks goroutines.
package driver
