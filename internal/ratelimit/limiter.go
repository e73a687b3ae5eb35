package ratelimit

import (
	"context"
	"fmt"
	"time"
)

const KeyPrefix = "ratelimit:"

// ErrorHook observes store failures; op is "is_limited", "increment",
// "reserve" or "release"
type ErrorHook func(op string, err error)

// FixedWindowLimiter caps events per user in a fixed window that starts at the
// first counted event. A burst straddling two windows can admit up to twice
// the nominal rate.
type FixedWindowLimiter struct {
	store    Store
	max      int64
	window   time.Duration
	failOpen bool
	onError  ErrorHook
}

type LimiterOption func(*FixedWindowLimiter)

// WithFailOpen selects the decision returned when the store fails: true lets
// the event through, false drops it
func WithFailOpen(failOpen bool) LimiterOption {
	return func(l *FixedWindowLimiter) {
		l.failOpen = failOpen
	}
}

func WithErrorHook(hook ErrorHook) LimiterOption {
	return func(l *FixedWindowLimiter) {
		l.onError = hook
	}
}

func NewFixedWindowLimiter(store Store, maxPerWindow int64, window time.Duration, opts ...LimiterOption) *FixedWindowLimiter {
	l := &FixedWindowLimiter{
		store:    store,
		max:      maxPerWindow,
		window:   window,
		failOpen: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func Key(userID string) string {
	return KeyPrefix + userID
}

func (l *FixedWindowLimiter) MaxPerWindow() int64 {
	return l.max
}

func (l *FixedWindowLimiter) Window() time.Duration {
	return l.window
}

// IsLimited is true once the stored count reaches the maximum. An absent key
// counts as zero. On a store error the configured policy decides and the
// error is returned alongside it.
func (l *FixedWindowLimiter) IsLimited(ctx context.Context, userID string) (bool, error) {
	count, err := l.store.Get(ctx, Key(userID))
	if err != nil {
		err = l.fail("is_limited", err)
		return !l.failOpen, err
	}
	return count >= l.max, nil
}

// Increment counts one event. The window starts when the key is created.
func (l *FixedWindowLimiter) Increment(ctx context.Context, userID string) error {
	if _, err := l.store.Incr(ctx, Key(userID), l.window); err != nil {
		return l.fail("increment", err)
	}
	return nil
}

// Reserve takes a slot with a single atomic increment and reports whether the
// post-increment count is still within the maximum. Concurrent callers can
// never be granted more than max slots per window.
func (l *FixedWindowLimiter) Reserve(ctx context.Context, userID string) (bool, error) {
	count, err := l.store.Incr(ctx, Key(userID), l.window)
	if err != nil {
		err = l.fail("reserve", err)
		return l.failOpen, err
	}
	return count <= l.max, nil
}

// Release gives back a slot taken by Reserve whose event was not recorded.
// The window's expiry is unchanged.
func (l *FixedWindowLimiter) Release(ctx context.Context, userID string) error {
	if _, err := l.store.Decr(ctx, Key(userID)); err != nil {
		return l.fail("release", err)
	}
	return nil
}

// Reset clears the user's window
func (l *FixedWindowLimiter) Reset(ctx context.Context, userID string) error {
	return l.store.Delete(ctx, Key(userID))
}

func (l *FixedWindowLimiter) fail(op string, err error) error {
	if l.onError != nil {
		l.onError(op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
