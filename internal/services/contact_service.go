package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var ErrContactNotFound = errors.New("notification contact not found")

type contactService struct {
	contactRepo repositories.NotificationContactRepositoryInterface
}

func NewContactService(contactRepo repositories.NotificationContactRepositoryInterface) ContactServiceInterface {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) UpdateContact(ctx context.Context, userID uuid.UUID, email string) (*models.NotificationContact, error) {
	contact := &models.NotificationContact{
		UserID: userID,
		Email:  strings.ToLower(strings.TrimSpace(email)),
	}

	if err := s.contactRepo.Upsert(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) GetContact(ctx context.Context, userID uuid.UUID) (*models.NotificationContact, error) {
	contact, err := s.contactRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}
