package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var ErrAlertNotFound = errors.New("alert not found")

type alertService struct {
	alertRepo repositories.AlertHistoryRepositoryInterface
	now       func() time.Time
}

func NewAlertService(alertRepo repositories.AlertHistoryRepositoryInterface) AlertServiceInterface {
	return &alertService{
		alertRepo: alertRepo,
		now:       time.Now,
	}
}

// ListAlerts returns the user's alerts newest first
func (s *alertService) ListAlerts(ctx context.Context, userID uuid.UUID, page dto.PaginationParams) (*dto.ListAlertsResponse, error) {
	page.Normalize()

	alerts, total, err := s.alertRepo.ListByUser(ctx, userID, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	if alerts == nil {
		alerts = []models.AlertHistory{}
	}

	return &dto.ListAlertsResponse{
		Alerts:     alerts,
		Pagination: dto.NewPaginationInfo(page, total),
	}, nil
}

func (s *alertService) ListUnread(ctx context.Context, userID uuid.UUID) ([]models.AlertHistory, error) {
	alerts, err := s.alertRepo.ListUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread alerts: %w", err)
	}
	if alerts == nil {
		alerts = []models.AlertHistory{}
	}
	return alerts, nil
}

func (s *alertService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.alertRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}
	return count, nil
}

// MarkRead marks one of the user's alerts read. An alert of another user is
// reported as not found. Marking a read alert again keeps its read time.
func (s *alertService) MarkRead(ctx context.Context, userID, alertID uuid.UUID) (*models.AlertHistory, error) {
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repositories.ErrAlertNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	if alert.UserID != userID {
		return nil, ErrAlertNotFound
	}

	now := s.now()
	if !alert.MarkRead(now) {
		return alert, nil
	}

	if err := s.alertRepo.MarkRead(ctx, alert.ID, now); err != nil {
		if errors.Is(err, repositories.ErrAlertNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to mark alert read: %w", err)
	}

	return alert, nil
}

func (s *alertService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.alertRepo.MarkAllRead(ctx, userID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark alerts read: %w", err)
	}
	return updated, nil
}
