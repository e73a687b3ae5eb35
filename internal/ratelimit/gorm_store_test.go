package ratelimit

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGormStore(t *testing.T, now *time.Time) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.RateLimitCounter{}))

	return NewGormStore(repositories.NewRateLimitCounterRepository(db)).WithClock(func() time.Time { return *now })
}

func TestGormStore_IncrAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newGormStore(t, &now)

	count, err := store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	now = now.Add(30 * time.Second)
	count, err = store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// the window is fixed by the first increment
	now = now.Add(31 * time.Second)
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.EqualValues(t, 0, got)

	count, err = store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGormStore_Delete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newGormStore(t, &now)

	_, err := store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "k"))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.EqualValues(t, 0, got)
}

func TestGormStore_SetNX(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newGormStore(t, &now)

	won, err := store.SetNX(ctx, "dedup:abc", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = store.SetNX(ctx, "dedup:abc", 5*time.Second)
	require.NoError(t, err)
	assert.False(t, won)

	now = now.Add(5 * time.Second)
	won, err = store.SetNX(ctx, "dedup:abc", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, won)
}

func TestGormStore_Decr(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newGormStore(t, &now)

	_, err := store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)

	v, err := store.Decr(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = store.Decr(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, v)
}
