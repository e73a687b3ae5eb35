package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Apply the SQL migrations under --path to the configured Postgres database,
or run the schema auto-migration for SQLite. --status prints the current
version instead.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "print the current migration version and exit")
	cmd.Flags().Bool("seed", false, "load the SQL seed files after migrating")
	cmd.Flags().String("path", database.DefaultMigrationsPath, "migrations directory")
	cmd.Flags().String("seeds-path", database.DefaultSeedsPath, "seed files directory")
	_ = viper.BindPFlag("migrate.status", cmd.Flags().Lookup("status"))
	_ = viper.BindPFlag("migrate.seed", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("migrate.path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("migrate.seeds_path", cmd.Flags().Lookup("seeds-path"))

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.Database.IsSQLite() {
		if viper.GetBool("migrate.status") {
			return fmt.Errorf("migration status is only tracked for postgres")
		}
		if err := a.migrate(ctx); err != nil {
			return err
		}
		slog.Info("SQLite schema migrated", "path", a.cfg.Database.SQLitePath)
		return nil
	}

	// migrations run on their own lib/pq handle, separate from the gorm pool
	sqlDB, err := sql.Open("postgres", a.cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()
	runner := database.NewMigrationRunner(sqlDB, viper.GetString("migrate.path"), viper.GetString("migrate.seeds_path"))

	if viper.GetBool("migrate.status") {
		version, dirty, err := runner.GetMigrationStatus()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
		return nil
	}

	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}
	if err := runner.RunMigrations(); err != nil {
		return err
	}
	if viper.GetBool("migrate.seed") {
		if err := runner.LoadSeeds(); err != nil {
			return fmt.Errorf("failed to load seeds: %w", err)
		}
	}

	slog.Info("Migrations applied")
	return nil
}
