package main

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate demo transaction history for a user",
		Long: `Generate realistic salary, bill and daily purchase transactions ending
today and store them for --user. Use --seed for a reproducible history.`,
		RunE: runSeed,
	}

	cmd.Flags().String("user", "", "owner user id (default: a new random id)")
	cmd.Flags().Int("months", 3, "months of history to generate")
	cmd.Flags().Uint64("seed", 0, "random seed (0 picks one from the clock)")
	_ = viper.BindPFlag("seed.user", cmd.Flags().Lookup("user"))
	_ = viper.BindPFlag("seed.months", cmd.Flags().Lookup("months"))
	_ = viper.BindPFlag("seed.seed", cmd.Flags().Lookup("seed"))

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	userID := uuid.New()
	if raw := viper.GetString("seed.user"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		userID = parsed
	}

	months := viper.GetInt("seed.months")
	if months < 1 {
		return fmt.Errorf("months must be at least 1")
	}

	var opts []services.DemoGeneratorOption
	if seed := viper.GetUint64("seed.seed"); seed != 0 {
		opts = append(opts, services.WithDemoSeed(seed))
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.migrate(ctx); err != nil {
		return err
	}

	transactions := services.NewDemoGenerator(opts...).GenerateHistory(userID, time.Now(), months)
	if err := a.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return fmt.Errorf("failed to store demo transactions: %w", err)
	}

	slog.Info("Demo history generated", "user_id", userID, "months", months, "transactions", len(transactions))
	fmt.Fprintln(cmd.OutOrStdout(), userID)
	return nil
}
