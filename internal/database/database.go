package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens the configured driver, tunes the pool and pings once
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	if cfg.IsSQLite() {
		dialector = sqlite.Open(cfg.SQLitePath)
	} else {
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.IsSQLite() {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Models lists every table owned by this service
func Models() []interface{} {
	return []interface{}{
		&models.Transaction{},
		&models.Budget{},
		&models.SavingsGoal{},
		&models.RecurringTransaction{},
		&models.AlertRule{},
		&models.AlertHistory{},
		&models.NotificationLog{},
		&models.NotificationContact{},
		&models.RateLimitCounter{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_category ON transactions(user_id, category)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_external_id ON transactions(user_id, external_id)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_state_month ON budgets(state, month)",
		"CREATE INDEX IF NOT EXISTS idx_alert_rules_type ON alert_rules(rule_type)",
		"CREATE INDEX IF NOT EXISTS idx_alert_history_user_unread ON alert_history(user_id, is_read)",
		"CREATE INDEX IF NOT EXISTS idx_alert_history_dedup ON alert_history(user_id, category, alert_type, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_notification_logs_status ON notification_logs(status)",
		"CREATE INDEX IF NOT EXISTS idx_rate_limit_counters_expires_at ON rate_limit_counters(expires_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// CleanupExpiredCounters removes rate-limit and dedup rows past their expiry
func (db *DB) CleanupExpiredCounters(ctx context.Context) (int64, error) {
	result := db.DB.WithContext(ctx).Where("expires_at <= ?", time.Now().UTC()).Delete(&models.RateLimitCounter{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired counters: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Initialize connects and brings the schema up to date. Postgres goes through
// the SQL migrations when enabled and falls back to AutoMigrate if they fail;
// SQLite always uses AutoMigrate.
func Initialize(ctx context.Context, cfg *config.Config, opts MigrationOptions) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrated := false
	if !cfg.Database.IsSQLite() && opts.AutoMigrate {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := RunMigrationsIfEnabled(ctx, sqlDB, opts); err != nil {
			slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		} else {
			migrated = true
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized", "driver", cfg.Database.Driver)

	return db, nil
}
