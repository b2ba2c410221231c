package service

import (
	"context"
	"errors"
	"time"

	"backoffice-api/internal/features/notifications/domain"
	"backoffice-api/internal/features/notifications/ports"
)

// ErrNotificationNotFound is returned when a notification does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles storefront announcements.
type NotificationService struct {
	repo ports.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo ports.NotificationRepository) *NotificationService {
	return &NotificationService{
		repo: repo,
	}
}

// List returns all notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.repo.List(ctx)
}

// Save validates and writes a notification; one without an ID is inserted
// as a draft, otherwise updated.
func (s *NotificationService) Save(ctx context.Context, notification *domain.Notification) error {
	if err := notification.Validate(); err != nil {
		return err
	}
	if notification.ID == "" {
		if notification.Status == "" {
			notification.Status = domain.StatusDraft
			if notification.ScheduledAt != nil {
				notification.Status = domain.StatusScheduled
			}
		}
		return s.repo.Insert(ctx, notification)
	}
	return s.repo.Update(ctx, notification)
}

// Send marks a notification as sent now. Sending twice is refused; the
// first send is the one that counts.
func (s *NotificationService) Send(ctx context.Context, id string) (*domain.Notification, error) {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	if notification.Status == domain.StatusSent {
		return nil, domain.ErrAlreadySent
	}

	if err := s.repo.MarkSent(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
