package repositories

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RecurringTransactionRepositoryTestSuite struct {
	suite.Suite
	db     *gorm.DB
	repo   RecurringTransactionRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
	now    time.Time
}

func (s *RecurringTransactionRepositoryTestSuite) SetupTest() {
	s.db = openTestDB(s.T(), &models.RecurringTransaction{})
	s.repo = NewRecurringTransactionRepository(s.db)
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.now = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
}

func (s *RecurringTransactionRepositoryTestSuite) TearDownTest() {
	closeTestDB(s.db)
}

func TestRecurringTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringTransactionRepositoryTestSuite))
}

func (s *RecurringTransactionRepositoryTestSuite) createSchedule(userID uuid.UUID, next time.Time, active bool) *models.RecurringTransaction {
	recurring := &models.RecurringTransaction{
		UserID:         userID,
		Amount:         decimal.NewFromInt(int64(gofakeit.Number(5, 500))),
		Type:           models.TransactionTypeExpense,
		Category:       "Subscriptions",
		Description:    gofakeit.AppName() + " plan",
		Frequency:      models.FrequencyMonthly,
		StartDate:      next.AddDate(0, -2, 0),
		NextOccurrence: next,
		Active:         active,
	}
	s.Require().NoError(s.repo.Create(s.ctx, recurring))
	return recurring
}

func (s *RecurringTransactionRepositoryTestSuite) TestCreate_RoundTrip() {
	created := s.createSchedule(s.userID, s.now, true)
	s.NotEqual(uuid.Nil, created.ID)

	found, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Description, found.Description)
	s.Equal(models.FrequencyMonthly, found.Frequency)
	s.True(found.Active)
	s.True(found.Amount.Equal(created.Amount))
	s.True(found.NextOccurrence.Equal(s.now))
}

func (s *RecurringTransactionRepositoryTestSuite) TestCreate_RejectsInvalidFrequency() {
	err := s.repo.Create(s.ctx, &models.RecurringTransaction{
		UserID:      s.userID,
		Amount:      decimal.NewFromInt(10),
		Type:        models.TransactionTypeExpense,
		Description: "Gym",
		Frequency:   "FORTNIGHTLY",
		StartDate:   s.now,
	})
	s.ErrorIs(err, models.ErrInvalidFrequency)
}

func (s *RecurringTransactionRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrRecurringNotFound)
}

func (s *RecurringTransactionRepositoryTestSuite) TestListByUser_ActiveFirstThenSoonest() {
	later := s.createSchedule(s.userID, s.now.AddDate(0, 0, 10), true)
	soonest := s.createSchedule(s.userID, s.now.AddDate(0, 0, 1), true)
	paused := s.createSchedule(s.userID, s.now.AddDate(0, 0, -30), false)
	s.createSchedule(uuid.New(), s.now, true)

	schedules, total, err := s.repo.ListByUser(s.ctx, s.userID, 0, 10)

	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(schedules, 3)
	s.Equal(soonest.ID, schedules[0].ID)
	s.Equal(later.ID, schedules[1].ID)
	s.Equal(paused.ID, schedules[2].ID)

	page, total, err := s.repo.ListByUser(s.ctx, s.userID, 2, 2)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(page, 1)
}

func (s *RecurringTransactionRepositoryTestSuite) TestListDue() {
	overdue := s.createSchedule(s.userID, s.now.AddDate(0, 0, -3), true)
	dueNow := s.createSchedule(uuid.New(), s.now, true)
	s.createSchedule(s.userID, s.now.AddDate(0, 0, 1), true)
	s.createSchedule(s.userID, s.now.AddDate(0, 0, -1), false)

	ended := s.createSchedule(s.userID, s.now.AddDate(0, 0, -1), true)
	endDate := s.now.AddDate(0, 0, -2)
	ended.EndDate = &endDate
	ended.StartDate = endDate.AddDate(0, -2, 0)
	s.Require().NoError(s.repo.Update(s.ctx, ended))

	due, err := s.repo.ListDue(s.ctx, s.now, 0)

	s.Require().NoError(err)
	s.Require().Len(due, 2)
	s.Equal(overdue.ID, due[0].ID)
	s.Equal(dueNow.ID, due[1].ID)

	limited, err := s.repo.ListDue(s.ctx, s.now, 1)
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal(overdue.ID, limited[0].ID)
}

func (s *RecurringTransactionRepositoryTestSuite) TestUpdate_PersistsAdvance() {
	recurring := s.createSchedule(s.userID, s.now, true)
	posted := s.now

	recurring.Advance()
	recurring.LastPostedAt = &posted
	s.Require().NoError(s.repo.Update(s.ctx, recurring))

	found, err := s.repo.GetByID(s.ctx, recurring.ID)
	s.Require().NoError(err)
	s.True(found.NextOccurrence.Equal(s.now.AddDate(0, 1, 0)))
	s.Require().NotNil(found.LastPostedAt)
	s.True(found.LastPostedAt.Equal(posted))
}

func (s *RecurringTransactionRepositoryTestSuite) TestUpdate_Deactivate() {
	recurring := s.createSchedule(s.userID, s.now, true)
	recurring.Active = false
	s.Require().NoError(s.repo.Update(s.ctx, recurring))

	found, err := s.repo.GetByID(s.ctx, recurring.ID)
	s.Require().NoError(err)
	s.False(found.Active)

	due, err := s.repo.ListDue(s.ctx, s.now, 0)
	s.Require().NoError(err)
	s.Empty(due)
}

func (s *RecurringTransactionRepositoryTestSuite) TestDelete() {
	recurring := s.createSchedule(s.userID, s.now, true)

	s.Require().NoError(s.repo.Delete(s.ctx, recurring.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, recurring.ID), ErrRecurringNotFound)

	_, err := s.repo.GetByID(s.ctx, recurring.ID)
	s.ErrorIs(err, ErrRecurringNotFound)
}
