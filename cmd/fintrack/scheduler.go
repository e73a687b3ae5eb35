package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func schedulerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Run the budget alert scheduler",
		Long: `Compare month-to-date spending with every active budget and raise
BUDGET_WARNING or BUDGET_EXCEEDED alerts. Runs every ALERT_BUDGET_CHECK_INTERVAL
until interrupted, or a single pass with --once.`,
		RunE: runScheduler,
	}

	cmd.Flags().Bool("once", false, "run a single check and exit")
	_ = viper.BindPFlag("scheduler.once", cmd.Flags().Lookup("once"))

	return cmd
}

func runScheduler(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.dispatcher.Start(ctx)
	defer a.dispatcher.Stop()

	scheduler := a.budgetScheduler()

	if viper.GetBool("scheduler.once") {
		raised, err := scheduler.RunOnce(ctx)
		if err != nil {
			return err
		}
		slog.Info("Budget check completed", "alerts_raised", raised)
		return nil
	}

	scheduler.Start(ctx)
	return nil
}
