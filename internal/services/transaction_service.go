package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var ErrInvalidTransactionDate = errors.New("invalid transaction date")

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categorizer     CategorizerInterface
	publisher       TransactionEventPublisher
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categorizer CategorizerInterface,
	publisher TransactionEventPublisher,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categorizer:     categorizer,
		publisher:       publisher,
		metrics:         metrics,
		now:             time.Now,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	date := calendarDate(s.now())
	if req.TransactionDate != "" {
		if date, err = time.Parse(dateLayout, req.TransactionDate); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTransactionDate, req.TransactionDate)
		}
	}

	transaction := &models.Transaction{
		UserID:          userID,
		Amount:          amount,
		Type:            req.Type,
		Category:        req.Category,
		Description:     strings.TrimSpace(req.Description),
		MerchantName:    strings.TrimSpace(req.MerchantName),
		Notes:           req.Notes,
		TransactionDate: date,
		Source:          models.TransactionSourceManual,
	}

	if err := s.Record(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// Record stores a transaction from any source and publishes its event. A
// missing category is inferred first. Publishing failures are logged only.
func (s *transactionService) Record(ctx context.Context, transaction *models.Transaction) error {
	if strings.TrimSpace(transaction.Category) == "" {
		if result := s.categorizer.CategorizeTransaction(transaction); result != nil {
			transaction.Category = result.Category
		}
	}
	transaction.Normalize()

	if err := transaction.Validate(); err != nil {
		return err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.created", map[string]string{
		"source": transaction.Source,
	})

	if err := s.publisher.PublishTransactionCreated(ctx, models.NewTransactionEvent(transaction)); err != nil {
		slog.Error("Failed to publish transaction event",
			"transaction_id", transaction.ID,
			"user_id", transaction.UserID,
			"error", err,
		)
	}

	return nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filters dto.TransactionFilters, page dto.PaginationParams) (*dto.ListTransactionsResponse, error) {
	page.Normalize()

	repoFilters := repositories.TransactionFilters{
		Type:     models.CanonicalType(filters.Type),
		Category: filters.Category,
		Offset:   page.Offset(),
		Limit:    page.Size,
	}

	if filters.StartDate != "" {
		from, err := time.Parse(dateLayout, filters.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTransactionDate, filters.StartDate)
		}
		repoFilters.From = &from
	}
	if filters.EndDate != "" {
		end, err := time.Parse(dateLayout, filters.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTransactionDate, filters.EndDate)
		}
		// endDate is inclusive for callers
		to := end.AddDate(0, 0, 1)
		repoFilters.To = &to
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(ctx, userID, repoFilters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, dto.NewTransactionResponse(&transactions[i]))
	}

	return &dto.ListTransactionsResponse{
		Transactions: items,
		Pagination:   dto.NewPaginationInfo(page, total),
	}, nil
}

// calendarDate is the server-local calendar date as a UTC midnight
func calendarDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocalEventPublisher evaluates alerts in-process for deployments without a
// broker
type LocalEventPublisher struct {
	evaluator AlertEvaluatorInterface
}

func NewLocalEventPublisher(evaluator AlertEvaluatorInterface) *LocalEventPublisher {
	return &LocalEventPublisher{evaluator: evaluator}
}

func (p *LocalEventPublisher) PublishTransactionCreated(ctx context.Context, event models.TransactionEvent) error {
	if _, err := p.evaluator.Evaluate(ctx, event); err != nil {
		return fmt.Errorf("failed to evaluate transaction event: %w", err)
	}
	return nil
}
