package ratelimit

import (
	"context"
	"time"

	"fintrack/internal/repositories"
)

// GormStore keeps counters in the rate_limit_counters table. Expiry is checked
// on read, and expired rows are purged by database.CleanupExpiredCounters.
type GormStore struct {
	repo repositories.RateLimitCounterRepositoryInterface
	now  func() time.Time
}

func NewGormStore(repo repositories.RateLimitCounterRepositoryInterface) *GormStore {
	return &GormStore{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock replaces the time source, for tests
func (s *GormStore) WithClock(now func() time.Time) *GormStore {
	s.now = now
	return s
}

func (s *GormStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return s.repo.Increment(ctx, key, ttl, s.now())
}

func (s *GormStore) Decr(ctx context.Context, key string) (int64, error) {
	return s.repo.Decrement(ctx, key, s.now())
}

func (s *GormStore) Get(ctx context.Context, key string) (int64, error) {
	return s.repo.Get(ctx, key, s.now())
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

func (s *GormStore) SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.repo.InsertIfAbsent(ctx, key, ttl, s.now())
}
