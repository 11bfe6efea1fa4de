package services

import (
	"context"
	"errors"
	"sync"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeRelay struct {
	mu    sync.Mutex
	sent  []*ContactMessage
	err   error
	calls int
}

func (r *fakeRelay) Name() string { return "fake" }

func (r *fakeRelay) Send(ctx context.Context, msg *ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

// brokenStore fails every operation
type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}
func (brokenStore) Set(string, string) error { return errors.New("storage disabled") }

// readOnlyStore reads from an inner store but refuses writes
type readOnlyStore struct{ inner KeyValueStore }

func (s readOnlyStore) Get(k string) (string, bool, error) { return s.inner.Get(k) }
func (readOnlyStore) Set(string, string) error             { return errors.New("quota exceeded") }
