package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"console info", "info", "console", false},
		{"json debug", "debug", "json", false},
		{"bad level", "verbose", "console", true},
		{"bad format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("logging.level", tt.level)
			viper.Set("logging.format", tt.format)
			t.Cleanup(viper.Reset)

			var buf bytes.Buffer
			err := setupLogging(&buf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRootCommandTree(t *testing.T) {
	want := []string{"serve", "worker", "scheduler", "recurring", "import", "migrate", "seed", "token", "version"}

	var got []string
	for _, c := range rootCmd.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestIssueToken(t *testing.T) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)

	tokenService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
		AccessTokenDuration: time.Hour,
	})
	userID := uuid.New()

	response, err := issueToken(tokenService, userID.String(), "pat@example.com", "user")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.True(t, response.ExpiresAt.After(time.Now()))

	claims, err := tokenService.ValidateAccessToken(response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "pat@example.com", claims.Email)

	_, err = issueToken(tokenService, "not-a-uuid", "", "")
	assert.Error(t, err)
}

func TestEvaluateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := service_mocks.NewMockAlertEvaluatorInterface(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)

	event := models.TransactionEvent{EventID: uuid.New(), TransactionID: uuid.New(), UserID: uuid.New()}

	evaluator.EXPECT().
		Evaluate(gomock.Any(), event).
		DoAndReturn(func(ctx context.Context, _ models.TransactionEvent) ([]models.AlertHistory, error) {
			assert.Equal(t, event.EventID.String(), ctx.Value(services.CorrelationIDKey))
			return []models.AlertHistory{{}}, nil
		})
	metrics.EXPECT().IncrementCounter("event.consumed", map[string]string{"outcome": "ok"})

	require.NoError(t, evaluateEvent(evaluator, metrics)(context.Background(), event))

	evaluator.EXPECT().Evaluate(gomock.Any(), event).Return(nil, errors.New("database is locked"))
	metrics.EXPECT().IncrementCounter("event.consumed", map[string]string{"outcome": "error"})

	assert.Error(t, evaluateEvent(evaluator, metrics)(context.Background(), event))
}

func TestCountingPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := service_mocks.NewMockTransactionEventPublisher(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	publisher := &countingPublisher{next: next, metrics: metrics}

	next.EXPECT().PublishTransactionCreated(gomock.Any(), gomock.Any()).Return(nil)
	metrics.EXPECT().IncrementCounter("event.published", map[string]string{"status": "ok"})
	assert.NoError(t, publisher.PublishTransactionCreated(context.Background(), models.TransactionEvent{}))

	next.EXPECT().PublishTransactionCreated(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
	metrics.EXPECT().IncrementCounter("event.published", map[string]string{"status": "error"})
	assert.Error(t, publisher.PublishTransactionCreated(context.Background(), models.TransactionEvent{}))
}

// newApp registers collectors on the default registry, so it runs once
func TestNewApp_SQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: filepath.Join(t.TempDir(), "fintrack.db"),
		},
		Alerts: config.AlertsConfig{
			RateLimitWindow:       time.Hour,
			RateLimitMaxPerWindow: 10,
			FailOpen:              true,
		},
		Notifications: config.NotificationsConfig{Channels: []string{"IN_APP"}},
	}

	ctx := context.Background()
	a, err := newApp(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	require.NoError(t, a.migrate(ctx))

	userID := uuid.New()
	transactions := services.NewDemoGenerator(services.WithDemoSeed(7)).GenerateHistory(userID, time.Now(), 1)
	require.NotEmpty(t, transactions)
	require.NoError(t, a.transactionRepo.CreateBatch(ctx, transactions))

	report, err := a.reportService().GetReport(ctx, userID, models.RangeLast30Days, 0)
	require.NoError(t, err)
	assert.Positive(t, report.Summary.TransactionCount)
	assert.Nil(t, a.redis)
}
