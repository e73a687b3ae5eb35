// Package ratelimit holds the shared TTL counter store and the fixed-window
// limiter built on it. Counters live outside the process so every API and
// worker instance sees the same window.
package ratelimit

import (
	"context"
	"errors"
	"time"
)

var ErrStoreUnavailable = errors.New("rate limit store unavailable")

// Store is a key-value counter store with TTL semantics.
type Store interface {
	// Incr atomically increments key and returns the new value. When the
	// value becomes 1 the key expires after ttl.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// Get returns the current value, 0 for an absent or expired key.
	Get(ctx context.Context, key string) (int64, error)
	// Decr gives back one count on a live key and returns the new value. It
	// never creates a key, goes below zero or changes the expiry.
	Decr(ctx context.Context, key string) (int64, error)
	Delete(ctx context.Context, key string) error
	// SetNX sets key if it does not exist and reports whether it did.
	SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
