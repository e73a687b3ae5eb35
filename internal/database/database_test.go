package database

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_CreatesAllTables(t *testing.T) {
	db := SetupTestDB(t)

	for _, model := range Models() {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
	assert.NoError(t, db.CreateIndexes())
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestCleanupExpiredCounters(t *testing.T) {
	db := SetupTestDB(t)
	now := time.Now().UTC()

	require.NoError(t, db.Create(&models.RateLimitCounter{Key: "ratelimit:expired", Count: 4, ExpiresAt: now.Add(-time.Minute), UpdatedAt: now}).Error)
	require.NoError(t, db.Create(&models.RateLimitCounter{Key: "ratelimit:live", Count: 1, ExpiresAt: now.Add(time.Hour), UpdatedAt: now}).Error)

	removed, err := db.CleanupExpiredCounters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var remaining []models.RateLimitCounter
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "ratelimit:live", remaining[0].Key)
}
