package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Post due recurring transactions",
		Long: `Post every due occurrence of the active recurring schedules as a regular
transaction, so categorization, events and alerts apply to it. Runs every
RECURRING_INTERVAL until interrupted, or a single pass with --once.

A schedule that fell behind is caught up at most RECURRING_CATCH_UP_LIMIT
occurrences per pass; re-running never posts the same occurrence twice.`,
		RunE: runRecurring,
	}

	cmd.Flags().Bool("once", false, "run a single pass and exit")
	_ = viper.BindPFlag("recurring.once", cmd.Flags().Lookup("once"))

	return cmd
}

func runRecurring(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.migrate(ctx); err != nil {
		return err
	}

	a.dispatcher.Start(ctx)
	defer a.dispatcher.Stop()

	publisher, closePublisher, err := a.eventPublisher()
	if err != nil {
		return err
	}
	defer closePublisher()

	processor := a.recurringProcessor(a.transactionService(publisher))

	if viper.GetBool("recurring.once") {
		posted, err := processor.RunOnce(ctx)
		if err != nil {
			return err
		}
		slog.Info("Recurring pass completed", "transactions_posted", posted)
		return nil
	}

	processor.Start(ctx)
	return nil
}
