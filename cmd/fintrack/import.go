package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/dto"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a CSV or OFX/QFX statement for a user",
		Long: `Import transactions from a bank export. The format is taken from --format
or the file extension. Rows that fail are reported without aborting the
import, and duplicate OFX transactions are skipped.

Examples:
  fintrack import --user 3f0c... --file ~/Downloads/checking.qfx
  fintrack import --user 3f0c... --file export.txt --format csv`,
		RunE: runImport,
	}

	cmd.Flags().String("user", "", "owner user id (required)")
	cmd.Flags().String("file", "", "statement file to import (required)")
	cmd.Flags().String("format", "", "csv or ofx (default: from the file extension)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("file")
	_ = viper.BindPFlag("import.user", cmd.Flags().Lookup("user"))
	_ = viper.BindPFlag("import.file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("import.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	userID, err := uuid.Parse(viper.GetString("import.user"))
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	path := viper.GetString("import.file")
	format := viper.GetString("import.format")
	if format == "" {
		format = filepath.Ext(path)
	}
	format, err = services.NormalizeImportFormat(format)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.migrate(ctx); err != nil {
		return err
	}

	// alerts for imported rows are evaluated in-process
	a.dispatcher.Start(ctx)
	defer a.dispatcher.Stop()

	transactionService := a.transactionService(services.NewLocalEventPublisher(a.evaluator))
	importService := services.NewImportService(transactionService, a.transactionRepo, a.metrics, a.events)

	slog.Info("Importing statement", "file", path, "format", format, "user_id", userID)

	result, err := importService.Import(ctx, userID, file, format)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(dto.ImportResponse{Format: format, ImportResult: result})
}
