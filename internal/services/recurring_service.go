package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrRecurringNotFound = errors.New("recurring transaction not found")
	ErrInvalidRecurDate  = errors.New("invalid recurring schedule date")
)

type recurringService struct {
	recurringRepo repositories.RecurringTransactionRepositoryInterface
	now           func() time.Time
}

func NewRecurringService(recurringRepo repositories.RecurringTransactionRepositoryInterface) RecurringServiceInterface {
	return &recurringService{
		recurringRepo: recurringRepo,
		now:           time.Now,
	}
}

func (s *recurringService) CreateRecurring(ctx context.Context, userID uuid.UUID, req *dto.CreateRecurringRequest) (*models.RecurringTransaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	start, err := parseScheduleDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	recurring := &models.RecurringTransaction{
		UserID:       userID,
		Amount:       amount,
		Type:         req.Type,
		Category:     req.Category,
		Description:  strings.TrimSpace(req.Description),
		MerchantName: strings.TrimSpace(req.MerchantName),
		Frequency:    models.Frequency(req.Frequency),
		StartDate:    start,
		Active:       true,
	}
	if req.EndDate != "" {
		end, err := parseScheduleDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		recurring.EndDate = &end
	}

	recurring.Normalize()
	if err := recurring.Validate(); err != nil {
		return nil, err
	}

	if err := s.recurringRepo.Create(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}
	return recurring, nil
}

func (s *recurringService) ListRecurring(ctx context.Context, userID uuid.UUID, page dto.PaginationParams) (*dto.ListRecurringResponse, error) {
	page.Normalize()

	schedules, total, err := s.recurringRepo.ListByUser(ctx, userID, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}

	items := make([]dto.RecurringResponse, 0, len(schedules))
	for i := range schedules {
		items = append(items, dto.NewRecurringResponse(&schedules[i]))
	}
	return &dto.ListRecurringResponse{
		Recurring:  items,
		Pagination: dto.NewPaginationInfo(page, total),
	}, nil
}

// GetRecurring treats another user's schedule as missing
func (s *recurringService) GetRecurring(ctx context.Context, userID, recurringID uuid.UUID) (*models.RecurringTransaction, error) {
	recurring, err := s.recurringRepo.GetByID(ctx, recurringID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecurringNotFound) {
			return nil, ErrRecurringNotFound
		}
		return nil, fmt.Errorf("failed to get recurring transaction: %w", err)
	}
	if recurring.UserID != userID {
		return nil, ErrRecurringNotFound
	}
	return recurring, nil
}

func (s *recurringService) UpdateRecurring(ctx context.Context, userID, recurringID uuid.UUID, req *dto.UpdateRecurringRequest) (*models.RecurringTransaction, error) {
	recurring, err := s.GetRecurring(ctx, userID, recurringID)
	if err != nil {
		return nil, err
	}

	if req.Amount != "" {
		if recurring.Amount, err = parseAmount(req.Amount); err != nil {
			return nil, err
		}
	}
	if req.Type != "" {
		recurring.Type = req.Type
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		recurring.Category = category
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		recurring.Description = description
	}
	if merchant := strings.TrimSpace(req.MerchantName); merchant != "" {
		recurring.MerchantName = merchant
	}
	if req.Frequency != "" {
		recurring.Frequency = models.Frequency(strings.ToUpper(strings.TrimSpace(req.Frequency)))
	}
	if req.EndDate != "" {
		end, err := parseScheduleDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		recurring.EndDate = &end
	}
	if req.Active != nil {
		if *req.Active && !recurring.Active {
			s.resume(recurring)
		}
		recurring.Active = *req.Active
	}

	recurring.Normalize()
	if err := recurring.Validate(); err != nil {
		return nil, err
	}

	if err := s.recurringRepo.Update(ctx, recurring); err != nil {
		if errors.Is(err, repositories.ErrRecurringNotFound) {
			return nil, ErrRecurringNotFound
		}
		return nil, fmt.Errorf("failed to update recurring transaction: %w", err)
	}
	return recurring, nil
}

func (s *recurringService) DeleteRecurring(ctx context.Context, userID, recurringID uuid.UUID) error {
	if _, err := s.GetRecurring(ctx, userID, recurringID); err != nil {
		return err
	}

	if err := s.recurringRepo.Delete(ctx, recurringID); err != nil {
		if errors.Is(err, repositories.ErrRecurringNotFound) {
			return ErrRecurringNotFound
		}
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}
	return nil
}

// resume moves a paused schedule past the occurrences it missed
func (s *recurringService) resume(recurring *models.RecurringTransaction) {
	today := calendarDate(s.now())
	for recurring.NextOccurrence.Before(today) {
		recurring.NextOccurrence = recurring.Frequency.Next(recurring.NextOccurrence, recurring.StartDate.Day())
	}
}

func parseScheduleDate(value string) (time.Time, error) {
	date, err := time.Parse(models.RecurringDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRecurDate, value)
	}
	return date, nil
}
