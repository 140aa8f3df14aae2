// Package serializer guarantees that at most one transaction is between nonce
// assignment and acceptance by the node at any moment, across all concurrent
// callers of the process.
package serializer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrPoisoned is returned once a held section has panicked. The nonce state
// behind the serializer can no longer be trusted and the process is expected
// to restart.
var ErrPoisoned = errors.New("transaction serializer poisoned")

// Serializer is a single-permit lock whose waiters are served in arrival order
// and can abandon the wait when their context ends.
type Serializer struct {
	sem      *semaphore.Weighted
	poisoned atomic.Bool
}

// New returns an unheld Serializer. Share one instance per signing key.
func New() *Serializer {
	return &Serializer{
		sem: semaphore.NewWeighted(1),
	}
}

// Do waits for the permit, runs fn while holding it and releases it on every
// exit path. If ctx ends while waiting, Do returns ctx's error without running
// fn. A panic inside fn poisons the Serializer: the permit is released, the
// panic is converted into an error wrapping ErrPoisoned, and every later call
// fails with ErrPoisoned.
func (s *Serializer) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.poisoned.Load() {
		return ErrPoisoned
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.sem.Release(1)

	// a waiter queued behind the panicking holder must not run
	if s.poisoned.Load() {
		return ErrPoisoned
	}

	defer func() {
		if r := recover(); r != nil {
			s.poisoned.Store(true)
			err = fmt.Errorf("%w: %v", ErrPoisoned, r)
		}
	}()

	return fn(ctx)
}

// Poisoned reports whether a held section has panicked.
func (s *Serializer) Poisoned() bool {
	return s.poisoned.Load()
}
