package task

import (
	"context"
	"sync"
	"sync/atomic"
)

// Controller supervises a single long-running worker goroutine.
// The worker receives a context that is cancelled exactly once, by Stop.
type Controller struct {
	cancel context.CancelFunc
	alive  atomic.Bool
	result chan error

	joinOnce sync.Once
	err      error
}

// Spawn launches run on its own goroutine and returns its controller.
func Spawn(run func(ctx context.Context) error) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		cancel: cancel,
		result: make(chan error, 1),
	}
	c.alive.Store(true)

	go func() {
		err := run(ctx)
		c.alive.Store(false)
		c.result <- err
	}()

	return c
}

// IsAlive reports whether the worker has not yet returned.
func (c *Controller) IsAlive() bool {
	return c.alive.Load()
}

// Stop signals the worker to stop and waits for it to return.
func (c *Controller) Stop() error {
	c.cancel()
	return c.join()
}

// Wait blocks until the worker returns on its own.
func (c *Controller) Wait() error {
	return c.join()
}

func (c *Controller) join() error {
	c.joinOnce.Do(func() {
		c.err = <-c.result
	})
	return c.err
}
