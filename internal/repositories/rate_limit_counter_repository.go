package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type rateLimitCounterRepository struct {
	db *gorm.DB
}

func NewRateLimitCounterRepository(db *gorm.DB) RateLimitCounterRepositoryInterface {
	return &rateLimitCounterRepository{
		db: db,
	}
}

// Increment adds one to the counter in a single upsert. An expired row restarts
// at 1 with a fresh expiry; a live row keeps its expiry.
func (r *rateLimitCounterRepository) Increment(ctx context.Context, key string, ttl time.Duration, now time.Time) (int64, error) {
	now = now.UTC()
	expiresAt := now.Add(ttl)

	var stored models.RateLimitCounter
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.RateLimitCounter{
			Key:       key,
			Count:     1,
			ExpiresAt: expiresAt,
			UpdatedAt: now,
		}

		// every SET expression reads the pre-update row
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "counter_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"hits":       gorm.Expr("CASE WHEN rate_limit_counters.expires_at <= ? THEN 1 ELSE rate_limit_counters.hits + 1 END", now),
				"expires_at": gorm.Expr("CASE WHEN rate_limit_counters.expires_at <= ? THEN ? ELSE rate_limit_counters.expires_at END", now, expiresAt),
				"updated_at": now,
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}

		return tx.Where("counter_key = ?", key).First(&stored).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return stored.Count, nil
}

func (r *rateLimitCounterRepository) Decrement(ctx context.Context, key string, now time.Time) (int64, error) {
	now = now.UTC()

	var stored models.RateLimitCounter
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RateLimitCounter{}).
			Where("counter_key = ? AND expires_at > ? AND hits > 0", key, now).
			Updates(map[string]interface{}{
				"hits":       gorm.Expr("hits - 1"),
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		return tx.Where("counter_key = ? AND expires_at > ?", key, now).First(&stored).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to decrement counter: %w", err)
	}

	return stored.Count, nil
}

func (r *rateLimitCounterRepository) Get(ctx context.Context, key string, now time.Time) (int64, error) {
	var stored models.RateLimitCounter
	err := r.db.WithContext(ctx).
		Where("counter_key = ? AND expires_at > ?", key, now.UTC()).
		First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get counter: %w", err)
	}
	return stored.Count, nil
}

func (r *rateLimitCounterRepository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("counter_key = ?", key).Delete(&models.RateLimitCounter{}).Error; err != nil {
		return fmt.Errorf("failed to delete counter: %w", err)
	}
	return nil
}

// InsertIfAbsent claims key until now+ttl and reports whether this call won it
func (r *rateLimitCounterRepository) InsertIfAbsent(ctx context.Context, key string, ttl time.Duration, now time.Time) (bool, error) {
	now = now.UTC()

	var inserted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("counter_key = ? AND expires_at <= ?", key, now).
			Delete(&models.RateLimitCounter{}).Error; err != nil {
			return err
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.RateLimitCounter{
			Key:       key,
			Count:     1,
			ExpiresAt: now.Add(ttl),
			UpdatedAt: now,
		})
		if result.Error != nil {
			return result.Error
		}

		inserted = result.RowsAffected == 1
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to claim key: %w", err)
	}

	return inserted, nil
}
