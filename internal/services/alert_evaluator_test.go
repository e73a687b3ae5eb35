package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/ratelimit"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services/service_mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AlertEvaluatorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ruleRepo   *repository_mocks.MockAlertRuleRepositoryInterface
	alertRepo  *repository_mocks.MockAlertHistoryRepositoryInterface
	dispatcher *service_mocks.MockNotificationDispatcherInterface
	events     *service_mocks.MockEventLoggerInterface
	redis      *miniredis.Miniredis
	limiter    *ratelimit.FixedWindowLimiter
	evaluator  AlertEvaluatorInterface
	userID     uuid.UUID
}

func TestAlertEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(AlertEvaluatorTestSuite))
}

func (s *AlertEvaluatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ruleRepo = repository_mocks.NewMockAlertRuleRepositoryInterface(s.ctrl)
	s.alertRepo = repository_mocks.NewMockAlertHistoryRepositoryInterface(s.ctrl)
	s.dispatcher = service_mocks.NewMockNotificationDispatcherInterface(s.ctrl)
	s.events = service_mocks.NewMockEventLoggerInterface(s.ctrl)

	s.redis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.redis.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })
	s.limiter = ratelimit.NewFixedWindowLimiter(ratelimit.NewRedisStore(client), 3, time.Hour)

	s.evaluator = s.newEvaluator(s.limiter)
	s.userID = uuid.New()
}

func (s *AlertEvaluatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AlertEvaluatorTestSuite) newEvaluator(limiter AlertRateLimiter) AlertEvaluatorInterface {
	return NewAlertEvaluator(s.ruleRepo, s.alertRepo, limiter, s.dispatcher, NoopMetrics{}, s.events,
		AlertEvaluatorConfig{DefaultHighAmount: decimal.NewFromInt(1000)})
}

func (s *AlertEvaluatorTestSuite) event(txType string, amount string) models.TransactionEvent {
	return models.TransactionEvent{
		EventID:       uuid.New(),
		TransactionID: uuid.New(),
		UserID:        s.userID,
		Amount:        decimal.RequireFromString(amount),
		Type:          txType,
		Category:      "Electronics",
		Description:   "New laptop",
	}
}

// expectStored accepts every alert the evaluator persists
func (s *AlertEvaluatorTestSuite) expectStored(times int) {
	s.alertRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, alert *models.AlertHistory) error {
			alert.ID = uuid.New()
			return nil
		}).Times(times)
	s.events.EXPECT().LogAlertCreated(gomock.Any(), gomock.Any()).Times(times)
	s.dispatcher.EXPECT().Dispatch(gomock.Any()).Return(true).Times(times)
}

func (s *AlertEvaluatorTestSuite) TestHighAmount_DefaultThreshold() {
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil)
	s.expectStored(1)

	alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "1500.00"))

	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	alert := alerts[0]
	s.Equal(models.AlertTypeHighAmount, alert.AlertType)
	s.Equal(models.SeverityWarning, alert.Severity)
	s.Equal("High transaction detected: $1500.00 for 'New laptop'", alert.Message)
	s.Equal("1500.00", alert.Metadata.String("amount"))
	s.Equal("1000.00", alert.Metadata.String("threshold"))
	s.NotEmpty(alert.Metadata.String("transactionId"))
	s.Nil(alert.RuleID)
}

func (s *AlertEvaluatorTestSuite) TestHighAmount_ThresholdBoundary() {
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil)

	alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "1000.00"))

	s.Require().NoError(err)
	s.Empty(alerts)
}

func (s *AlertEvaluatorTestSuite) TestHighAmount_RuleThresholdOverridesDefault() {
	threshold := decimal.NewFromInt(100)
	rule := models.AlertRule{
		ID:              uuid.New(),
		UserID:          s.userID,
		RuleType:        models.RuleTypeHighAmount,
		ThresholdAmount: &threshold,
		State:           models.RuleStateActive,
	}
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return([]models.AlertRule{
		{ID: uuid.New(), UserID: s.userID, RuleType: models.RuleTypeHighAmount, State: models.RuleStateActive},
		rule,
	}, nil)
	s.expectStored(1)

	alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeDebit, "-150"))

	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	s.Require().NotNil(alerts[0].RuleID)
	s.Equal(rule.ID, *alerts[0].RuleID)
	s.Equal("100.00", alerts[0].Metadata.String("threshold"))
	s.Equal("150.00", alerts[0].Metadata.String("amount"))
}

func (s *AlertEvaluatorTestSuite) TestHighAmount_IgnoresIncome() {
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil)

	alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeIncome, "50000"))

	s.Require().NoError(err)
	s.Empty(alerts)
}

func (s *AlertEvaluatorTestSuite) TestUnevaluatedRuleTypesProduceNothing() {
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return([]models.AlertRule{
		{ID: uuid.New(), RuleType: models.RuleTypeDailyLimitExceeded},
		{ID: uuid.New(), RuleType: models.RuleTypeUnusualCategory},
	}, nil)

	alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "20"))

	s.Require().NoError(err)
	s.Empty(alerts)
}

func (s *AlertEvaluatorTestSuite) TestRateLimit_DropsFourthEventInWindow() {
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil).Times(3)
	s.expectStored(3)
	s.events.EXPECT().LogAlertSuppressed(gomock.Any(), s.userID, gomock.Any(), "rate_limited")

	for i := 0; i < 3; i++ {
		alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "2000"))
		s.Require().NoError(err)
		s.Len(alerts, 1)
	}

	limited, err := s.limiter.IsLimited(context.Background(), s.userID.String())
	s.Require().NoError(err)
	s.True(limited)

	alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "2000"))
	s.Require().NoError(err)
	s.Empty(alerts)
}

func (s *AlertEvaluatorTestSuite) TestRateLimit_WindowExpiryReopens() {
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.limiter.Increment(context.Background(), s.userID.String()))
	}
	limited, _ := s.limiter.IsLimited(context.Background(), s.userID.String())
	s.True(limited)

	s.redis.FastForward(time.Hour + time.Second)

	limited, err := s.limiter.IsLimited(context.Background(), s.userID.String())
	s.Require().NoError(err)
	s.False(limited)
}

func (s *AlertEvaluatorTestSuite) TestReserveRefusedSuppressesAlert() {
	limiter := service_mocks.NewMockAlertRateLimiter(s.ctrl)
	evaluator := s.newEvaluator(limiter)

	limiter.EXPECT().IsLimited(gomock.Any(), s.userID.String()).Return(false, nil)
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil)
	limiter.EXPECT().Reserve(gomock.Any(), s.userID.String()).Return(false, nil)
	s.events.EXPECT().LogAlertSuppressed(gomock.Any(), s.userID, gomock.Any(), "rate_limited")

	alerts, err := evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "5000"))

	s.Require().NoError(err)
	s.Empty(alerts)
}

func (s *AlertEvaluatorTestSuite) TestStoreFailureFailsOpen() {
	limiter := service_mocks.NewMockAlertRateLimiter(s.ctrl)
	evaluator := s.newEvaluator(limiter)

	limiter.EXPECT().IsLimited(gomock.Any(), gomock.Any()).Return(false, ratelimit.ErrStoreUnavailable)
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil)
	limiter.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(true, ratelimit.ErrStoreUnavailable)
	s.expectStored(1)

	alerts, err := evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "5000"))

	s.Require().NoError(err)
	s.Len(alerts, 1)
}

func (s *AlertEvaluatorTestSuite) TestRuleLookupErrorIsReturned() {
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, errors.New("db down"))

	_, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "5000"))

	s.Error(err)
}

func (s *AlertEvaluatorTestSuite) TestDispatchRejectionDoesNotFail() {
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil)
	s.alertRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.events.EXPECT().LogAlertCreated(gomock.Any(), gomock.Any())
	s.dispatcher.EXPECT().Dispatch(gomock.Any()).Return(false)

	alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "5000"))

	s.Require().NoError(err)
	s.Len(alerts, 1)
}

func (s *AlertEvaluatorTestSuite) TestFailedWriteGivesSlotBack() {
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil).Times(4)
	s.alertRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(3)

	for i := 0; i < 3; i++ {
		_, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "2000"))
		s.Require().Error(err)
	}

	limited, err := s.limiter.IsLimited(context.Background(), s.userID.String())
	s.Require().NoError(err)
	s.False(limited)

	s.expectStored(1)
	alerts, err := s.evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "2000"))
	s.Require().NoError(err)
	s.Len(alerts, 1)
}

func (s *AlertEvaluatorTestSuite) TestFailedWriteReleasesReservedSlot() {
	limiter := service_mocks.NewMockAlertRateLimiter(s.ctrl)
	evaluator := s.newEvaluator(limiter)

	limiter.EXPECT().IsLimited(gomock.Any(), s.userID.String()).Return(false, nil)
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil)
	limiter.EXPECT().Reserve(gomock.Any(), s.userID.String()).Return(true, nil)
	s.alertRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	limiter.EXPECT().Release(gomock.Any(), s.userID.String()).Return(nil)

	_, err := evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "5000"))

	s.Error(err)
}

func (s *AlertEvaluatorTestSuite) TestFailedWriteWithoutReservationReleasesNothing() {
	limiter := service_mocks.NewMockAlertRateLimiter(s.ctrl)
	evaluator := s.newEvaluator(limiter)

	limiter.EXPECT().IsLimited(gomock.Any(), gomock.Any()).Return(false, nil)
	s.ruleRepo.EXPECT().ListActiveByUser(gomock.Any(), s.userID).Return(nil, nil)
	limiter.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(true, ratelimit.ErrStoreUnavailable)
	s.alertRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := evaluator.Evaluate(context.Background(), s.event(models.TransactionTypeExpense, "5000"))

	s.Error(err)
}
