package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"advibes_site/metrics"
)

const rateLimitKeyPrefix = "rate_limit_"

// rateLimitRecord is the stored window state. ResetAt is unix milliseconds.
type rateLimitRecord struct {
	Count   int   `json:"count"`
	ResetAt int64 `json:"resetAt"`
}

// RateLimiter is a fixed-window attempt counter over a KeyValueStore.
//
// The read-modify-write on the store is not atomic; concurrent callers on the
// same key can each be allowed one extra attempt. It throttles, it does not
// enforce.
type RateLimiter struct {
	store   KeyValueStore
	clock   Clock
	metrics *metrics.Manager
}

func NewRateLimiter(store KeyValueStore, clock Clock, m *metrics.Manager) *RateLimiter {
	if clock == nil {
		clock = SystemClock
	}
	return &RateLimiter{store: store, clock: clock, metrics: m}
}

// CheckRateLimit records an attempt under key and reports whether it is
// allowed. At most maxAttempts are allowed per window; the window starts at
// the first attempt and is replaced wholesale once it has expired.
//
// Any storage failure allows the attempt (fail open): a broken store must
// not lock out legitimate visitors, at the cost of not throttling abusers
// while it is broken.
func (rl *RateLimiter) CheckRateLimit(key string, maxAttempts int, window time.Duration) bool {
	storageKey := rateLimitKeyPrefix + key
	now := rl.clock.Now().UnixMilli()

	raw, found, err := rl.store.Get(storageKey)
	if err != nil {
		return rl.failOpen(key, err)
	}

	if found {
		var rec rateLimitRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return rl.failOpen(key, err)
		}
		if now <= rec.ResetAt {
			if rec.Count >= maxAttempts {
				rl.metrics.ObserveRateLimit("denied")
				return false
			}
			rec.Count++
			return rl.save(key, storageKey, rec)
		}
	}

	return rl.save(key, storageKey, rateLimitRecord{Count: 1, ResetAt: now + window.Milliseconds()})
}

// RetryAfter returns how long until the window for key resets, or zero when
// no window is active. It is informational only.
func (rl *RateLimiter) RetryAfter(key string) time.Duration {
	raw, found, err := rl.store.Get(rateLimitKeyPrefix + key)
	if err != nil || !found {
		return 0
	}
	var rec rateLimitRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return 0
	}
	remaining := rec.ResetAt - rl.clock.Now().UnixMilli()
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining) * time.Millisecond
}

// Prune drops expired windows from stores that support deletion and
// returns how many were removed.
func (rl *RateLimiter) Prune() int {
	deleter, ok := rl.store.(PrefixDeleter)
	if !ok {
		return 0
	}
	now := rl.clock.Now().UnixMilli()
	n, err := deleter.DeletePrefixFunc(rateLimitKeyPrefix, func(key, value string) bool {
		var rec rateLimitRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			return true
		}
		return now > rec.ResetAt
	})
	if err != nil {
		log.Printf("[WARNING] Rate limit prune failed after %d deletions: %v", n, err)
	}
	return n
}

// Run prunes expired windows every interval until ctx is done
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.Prune(); n > 0 {
				log.Printf("Pruned %d expired rate limit windows", n)
			}
		}
	}
}

func (rl *RateLimiter) save(key, storageKey string, rec rateLimitRecord) bool {
	data, err := json.Marshal(rec)
	if err != nil {
		return rl.failOpen(key, err)
	}
	if err := rl.store.Set(storageKey, string(data)); err != nil {
		return rl.failOpen(key, err)
	}
	rl.metrics.ObserveRateLimit("allowed")
	return true
}

func (rl *RateLimiter) failOpen(key string, err error) bool {
	log.Printf("[WARNING] Rate limit storage unavailable for %s, allowing attempt: %v", key, err)
	rl.metrics.ObserveRateLimit("fail_open")
	return true
}
