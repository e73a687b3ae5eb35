package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	publisher       *service_mocks.MockTransactionEventPublisher
	service         *transactionService
	userID          uuid.UUID
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.publisher = service_mocks.NewMockTransactionEventPublisher(s.ctrl)
	s.userID = uuid.New()

	s.service = NewTransactionService(s.transactionRepo, NewCategorizer(), s.publisher, NoopMetrics{}).(*transactionService)
	s.service.now = func() time.Time { return time.Date(2024, 3, 15, 22, 45, 0, 0, time.UTC) }
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceTestSuite) expectCreate() {
	s.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, transaction *models.Transaction) error {
			transaction.ID = uuid.New()
			return nil
		})
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_DefaultsAndEvent() {
	s.expectCreate()

	var published models.TransactionEvent
	s.publisher.EXPECT().PublishTransactionCreated(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.TransactionEvent) error {
			published = event
			return nil
		})

	transaction, err := s.service.CreateTransaction(context.Background(), s.userID, &dto.CreateTransactionRequest{
		Amount:       "-85.456",
		Description:  "  Weekly shop ",
		MerchantName: "Whole Foods",
	})

	s.Require().NoError(err)
	s.Equal(models.TransactionTypeExpense, transaction.Type)
	s.True(transaction.Amount.Equal(decimal.RequireFromString("85.46")))
	s.Equal(models.CategoryGroceries, transaction.Category)
	s.Equal("Weekly shop", transaction.Description)
	s.Equal(models.TransactionSourceManual, transaction.Source)
	s.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), transaction.TransactionDate)

	s.Equal(transaction.ID, published.TransactionID)
	s.Equal(s.userID, published.UserID)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_ProvidedCategoryKept() {
	s.expectCreate()
	s.publisher.EXPECT().PublishTransactionCreated(gomock.Any(), gomock.Any()).Return(nil)

	transaction, err := s.service.CreateTransaction(context.Background(), s.userID, &dto.CreateTransactionRequest{
		Amount:          "1200",
		Type:            "credit",
		Category:        "Salary",
		Description:     "Payroll",
		TransactionDate: "2024-03-01",
	})

	s.Require().NoError(err)
	s.Equal(models.TransactionTypeIncome, transaction.Type)
	s.Equal("Salary", transaction.Category)
	s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), transaction.TransactionDate)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_PublishFailureIsNotFatal() {
	s.expectCreate()
	s.publisher.EXPECT().PublishTransactionCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	_, err := s.service.CreateTransaction(context.Background(), s.userID, &dto.CreateTransactionRequest{
		Amount:      "10",
		Description: "Parking",
	})

	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_InvalidInput() {
	_, err := s.service.CreateTransaction(context.Background(), s.userID, &dto.CreateTransactionRequest{
		Amount:      "ten",
		Description: "Parking",
	})
	s.ErrorIs(err, ErrInvalidMoney)

	_, err = s.service.CreateTransaction(context.Background(), s.userID, &dto.CreateTransactionRequest{
		Amount:          "10",
		Description:     "Parking",
		TransactionDate: "15/03/2024",
	})
	s.ErrorIs(err, ErrInvalidTransactionDate)

	_, err = s.service.CreateTransaction(context.Background(), s.userID, &dto.CreateTransactionRequest{
		Amount:      "0",
		Description: "Nothing",
	})
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionServiceTestSuite) TestRecord_RepositoryError() {
	s.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	err := s.service.Record(context.Background(), &models.Transaction{
		UserID:          s.userID,
		Amount:          decimal.NewFromInt(20),
		Type:            models.TransactionTypeExpense,
		Description:     "Lunch",
		TransactionDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
	})

	s.Error(err)
	s.Contains(err.Error(), "failed to create transaction")
}

func (s *TransactionServiceTestSuite) TestListTransactions_Filters() {
	s.transactionRepo.EXPECT().GetWithFilters(gomock.Any(), s.userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, filters repositories.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(models.TransactionTypeExpense, filters.Type)
			s.Equal("Dining", filters.Category)
			s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *filters.From)
			s.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *filters.To)
			s.Equal(10, filters.Offset)
			s.Equal(10, filters.Limit)
			return []models.Transaction{{
				ID:              uuid.New(),
				UserID:          s.userID,
				Amount:          decimal.RequireFromString("12.5"),
				Type:            models.TransactionTypeExpense,
				Category:        "Dining",
				Description:     "Tacos",
				TransactionDate: time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC),
				Source:          models.TransactionSourceManual,
			}}, 11, nil
		})

	resp, err := s.service.ListTransactions(context.Background(), s.userID,
		dto.TransactionFilters{StartDate: "2024-03-01", EndDate: "2024-03-31", Type: "DEBIT", Category: "Dining"},
		dto.PaginationParams{Page: 2, Size: 10})

	s.Require().NoError(err)
	s.Require().Len(resp.Transactions, 1)
	s.Equal("12.50", resp.Transactions[0].Amount)
	s.Equal("2024-03-30", resp.Transactions[0].TransactionDate)
	s.Equal(int64(11), resp.Pagination.Total)
	s.Equal(2, resp.Pagination.TotalPages)
	s.False(resp.Pagination.HasMore)
}

func (s *TransactionServiceTestSuite) TestListTransactions_EmptyAndBadDate() {
	s.transactionRepo.EXPECT().GetWithFilters(gomock.Any(), s.userID, gomock.Any()).Return(nil, int64(0), nil)

	resp, err := s.service.ListTransactions(context.Background(), s.userID, dto.TransactionFilters{}, dto.PaginationParams{})
	s.Require().NoError(err)
	s.NotNil(resp.Transactions)
	s.Empty(resp.Transactions)
	s.Equal(1, resp.Pagination.Page)
	s.Equal(20, resp.Pagination.Size)

	_, err = s.service.ListTransactions(context.Background(), s.userID, dto.TransactionFilters{EndDate: "March"}, dto.PaginationParams{})
	s.ErrorIs(err, ErrInvalidTransactionDate)
}

func (s *TransactionServiceTestSuite) TestLocalEventPublisher() {
	evaluator := service_mocks.NewMockAlertEvaluatorInterface(s.ctrl)
	publisher := NewLocalEventPublisher(evaluator)
	event := models.TransactionEvent{TransactionID: uuid.New(), UserID: s.userID}

	evaluator.EXPECT().Evaluate(gomock.Any(), event).Return(nil, nil)
	s.NoError(publisher.PublishTransactionCreated(context.Background(), event))

	evaluator.EXPECT().Evaluate(gomock.Any(), event).Return(nil, errors.New("rules unavailable"))
	s.Error(publisher.PublishTransactionCreated(context.Background(), event))
}
