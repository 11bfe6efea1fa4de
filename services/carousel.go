package services

import (
	"context"
	"sync"
	"time"
)

// Rotator cycles through a fixed list of items on a repeating timer, the
// server-side counterpart of an auto-advancing carousel.
type Rotator[T any] struct {
	mu       sync.RWMutex
	items    []T
	index    int
	interval time.Duration
}

func NewRotator[T any](items []T, interval time.Duration) *Rotator[T] {
	return &Rotator[T]{items: items, interval: interval}
}

// Current returns the active item and its position. ok is false when the
// rotator has no items.
func (r *Rotator[T]) Current() (item T, index int, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return item, 0, false
	}
	return r.items[r.index], r.index, true
}

func (r *Rotator[T]) Len() int {
	return len(r.items)
}

// Advance moves to the next item, wrapping at the end
func (r *Rotator[T]) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.items)
}

// Run advances every interval until ctx is cancelled. It returns
// immediately when there is nothing to rotate.
func (r *Rotator[T]) Run(ctx context.Context) {
	if len(r.items) < 2 || r.interval <= 0 {
		return
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Advance()
		}
	}
}
