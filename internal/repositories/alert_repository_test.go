package repositories

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AlertRuleRepositoryTestSuite struct {
	suite.Suite
	db     *gorm.DB
	repo   AlertRuleRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func (s *AlertRuleRepositoryTestSuite) SetupTest() {
	s.db = openTestDB(s.T(), &models.AlertRule{})
	s.repo = NewAlertRuleRepository(s.db)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *AlertRuleRepositoryTestSuite) TearDownTest() {
	closeTestDB(s.db)
}

func TestAlertRuleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AlertRuleRepositoryTestSuite))
}

func (s *AlertRuleRepositoryTestSuite) newRule(ruleType models.RuleType, threshold int64) *models.AlertRule {
	amount := decimal.NewFromInt(threshold)
	return &models.AlertRule{
		UserID:          s.userID,
		Name:            gofakeit.BuzzWord(),
		RuleType:        ruleType,
		ThresholdAmount: &amount,
	}
}

func (s *AlertRuleRepositoryTestSuite) TestCreate_DefaultsToActive() {
	rule := s.newRule(models.RuleTypeHighAmount, 500)

	require.NoError(s.T(), s.repo.Create(s.ctx, rule))

	stored, err := s.repo.GetByID(s.ctx, rule.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.RuleStateActive, stored.State)
	require.NotNil(s.T(), stored.ThresholdAmount)
	assert.True(s.T(), decimal.NewFromInt(500).Equal(*stored.ThresholdAmount))
}

func (s *AlertRuleRepositoryTestSuite) TestCreate_InvalidType() {
	rule := s.newRule("WEEKLY_LIMIT", 5)
	assert.ErrorIs(s.T(), s.repo.Create(s.ctx, rule), models.ErrInvalidRuleType)
}

func (s *AlertRuleRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	assert.ErrorIs(s.T(), err, ErrRuleNotFound)
}

func (s *AlertRuleRepositoryTestSuite) TestListActiveByUser_SkipsDeactivated() {
	active := s.newRule(models.RuleTypeHighAmount, 100)
	require.NoError(s.T(), s.repo.Create(s.ctx, active))

	retired := s.newRule(models.RuleTypeHighAmount, 200)
	require.NoError(s.T(), s.repo.Create(s.ctx, retired))
	retired.Deactivate()
	require.NoError(s.T(), s.repo.Update(s.ctx, retired))

	rules, err := s.repo.ListActiveByUser(s.ctx, s.userID)
	require.NoError(s.T(), err)
	require.Len(s.T(), rules, 1)
	assert.Equal(s.T(), active.ID, rules[0].ID)

	all, err := s.repo.ListByUser(s.ctx, s.userID, true)
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)
}

func (s *AlertRuleRepositoryTestSuite) TestUpdate_ValidatesAndDetectsMissing() {
	rule := s.newRule(models.RuleTypeDailyLimitExceeded, 100)
	require.NoError(s.T(), s.repo.Create(s.ctx, rule))

	rule.ThresholdAmount = nil
	assert.ErrorIs(s.T(), s.repo.Update(s.ctx, rule), models.ErrRuleThresholdRequired)

	ghost := s.newRule(models.RuleTypeHighAmount, 1)
	ghost.ID = uuid.New()
	ghost.State = models.RuleStateActive
	assert.ErrorIs(s.T(), s.repo.Update(s.ctx, ghost), ErrRuleNotFound)
}

type AlertHistoryRepositoryTestSuite struct {
	suite.Suite
	db     *gorm.DB
	repo   AlertHistoryRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func (s *AlertHistoryRepositoryTestSuite) SetupTest() {
	s.db = openTestDB(s.T(), &models.AlertHistory{})
	s.repo = NewAlertHistoryRepository(s.db)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *AlertHistoryRepositoryTestSuite) TearDownTest() {
	closeTestDB(s.db)
}

func TestAlertHistoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AlertHistoryRepositoryTestSuite))
}

func (s *AlertHistoryRepositoryTestSuite) createAlert(alertType models.AlertType, category string, createdAt time.Time) *models.AlertHistory {
	alert := &models.AlertHistory{
		UserID:    s.userID,
		AlertType: alertType,
		Severity:  models.SeverityWarning,
		Message:   gofakeit.Sentence(6),
		Category:  category,
		CreatedAt: createdAt,
	}
	alert.SetMetadata("amount", "1500.00")
	require.NoError(s.T(), s.repo.Create(s.ctx, alert))
	return alert
}

func (s *AlertHistoryRepositoryTestSuite) TestCreate_RoundTripsMetadata() {
	alert := s.createAlert(models.AlertTypeHighAmount, "", time.Now().UTC())

	stored, err := s.repo.GetByID(s.ctx, alert.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "1500.00", stored.Metadata.String("amount"))
	assert.False(s.T(), stored.IsRead)
}

func (s *AlertHistoryRepositoryTestSuite) TestListByUser_NewestFirstAndPaged() {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.createAlert(models.AlertTypeHighAmount, "", base.Add(time.Duration(i)*time.Minute))
	}

	page, total, err := s.repo.ListByUser(s.ctx, s.userID, 0, 2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), total)
	require.Len(s.T(), page, 2)
	assert.True(s.T(), page[0].CreatedAt.After(page[1].CreatedAt))
	assert.Equal(s.T(), base.Add(4*time.Minute).Unix(), page[0].CreatedAt.Unix())
}

func (s *AlertHistoryRepositoryTestSuite) TestMarkRead() {
	alert := s.createAlert(models.AlertTypeHighAmount, "", time.Now().UTC())
	s.createAlert(models.AlertTypeHighAmount, "", time.Now().UTC())

	count, err := s.repo.CountUnread(s.ctx, s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), count)

	require.NoError(s.T(), s.repo.MarkRead(s.ctx, alert.ID, time.Now().UTC()))
	// second call is a no-op on an existing alert
	require.NoError(s.T(), s.repo.MarkRead(s.ctx, alert.ID, time.Now().UTC()))

	unread, err := s.repo.ListUnread(s.ctx, s.userID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), unread, 1)

	assert.ErrorIs(s.T(), s.repo.MarkRead(s.ctx, uuid.New(), time.Now()), ErrAlertNotFound)
}

func (s *AlertHistoryRepositoryTestSuite) TestMarkAllRead() {
	s.createAlert(models.AlertTypeHighAmount, "", time.Now().UTC())
	s.createAlert(models.AlertTypeBudgetWarning, "Food", time.Now().UTC())

	changed, err := s.repo.MarkAllRead(s.ctx, s.userID, time.Now().UTC())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), changed)

	count, err := s.repo.CountUnread(s.ctx, s.userID)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), count)
}

func (s *AlertHistoryRepositoryTestSuite) TestExistsSince() {
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s.createAlert(models.AlertTypeBudgetWarning, "Food", monthStart.Add(-time.Hour))

	exists, err := s.repo.ExistsSince(s.ctx, s.userID, "Food", models.AlertTypeBudgetWarning, monthStart)
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)

	s.createAlert(models.AlertTypeBudgetWarning, "Food", monthStart.Add(time.Hour))

	exists, err = s.repo.ExistsSince(s.ctx, s.userID, "Food", models.AlertTypeBudgetWarning, monthStart)
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)

	exists, err = s.repo.ExistsSince(s.ctx, s.userID, "Food", models.AlertTypeBudgetExceeded, monthStart)
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}
