// Package workers provides a bounded capability for executing blocking work
// (filesystem reads, decompression, subprocess calls) away from the
// connection-serving path.
package workers

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Runner executes a blocking function. Implementations bound how much
// blocking work runs at once; tests substitute a synchronous fake.
type Runner interface {
	Run(ctx context.Context, f func() error) error
}

// Pool is a semaphore-bounded Runner.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a Pool allowing at most size concurrent calls.
func NewPool(size int64) *Pool {
	return &Pool{sem: semaphore.NewWeighted(size)}
}

// Run executes f once a worker slot is free and returns f's error.
// Slot acquisition honors ctx; f itself is never interrupted once started.
func (p *Pool) Run(ctx context.Context, f func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return f()
}

// Do runs f through r and hands back its value alongside its error.
func Do[T any](ctx context.Context, r Runner, f func() (T, error)) (T, error) {
	var v T
	err := r.Run(ctx, func() error {
		var err error
		v, err = f()
		return err
	})
	return v, err
}
