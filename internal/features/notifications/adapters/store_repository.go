package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice-api/internal/core/datastore"
	"backoffice-api/internal/features/notifications/domain"

	"github.com/google/uuid"
)

const notificationsTable = "notifications"

// StoreNotificationRepository implements ports.NotificationRepository
// against the hosted row store.
type StoreNotificationRepository struct {
	store *datastore.Client
}

// NewStoreNotificationRepository creates a new StoreNotificationRepository.
func NewStoreNotificationRepository(store *datastore.Client) *StoreNotificationRepository {
	return &StoreNotificationRepository{
		store: store,
	}
}

// List returns all notifications, newest first.
func (r *StoreNotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.store.From(notificationsTable).
		Select("*").
		OrderBy("created_at", false).
		Fetch(ctx, &notifications)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// GetByID returns a notification, or nil when absent.
func (r *StoreNotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.store.From(notificationsTable).
		Select("*").
		Eq("id", id).
		One(ctx, &notification)
	if err != nil {
		if errors.Is(err, datastore.ErrRowNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch notification %s: %w", id, err)
	}
	return &notification, nil
}

// Insert writes a new notification row, assigning an id when absent.
func (r *StoreNotificationRepository) Insert(ctx context.Context, notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.Status == "" {
		notification.Status = domain.StatusDraft
	}
	if err := r.store.Insert(ctx, notificationsTable, notificationRow(notification)); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// Update patches an existing notification row.
func (r *StoreNotificationRepository) Update(ctx context.Context, notification *domain.Notification) error {
	if err := r.store.Update(ctx, notificationsTable, notificationRow(notification), "id", notification.ID); err != nil {
		return fmt.Errorf("failed to update notification %s: %w", notification.ID, err)
	}
	return nil
}

// MarkSent flips the status to sent and stamps the send time.
func (r *StoreNotificationRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	patch := map[string]interface{}{
		"status":  domain.StatusSent,
		"sent_at": sentAt,
	}
	if err := r.store.Update(ctx, notificationsTable, patch, "id", id); err != nil {
		return fmt.Errorf("failed to mark notification %s sent: %w", id, err)
	}
	return nil
}

// Delete removes a notification row.
func (r *StoreNotificationRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, notificationsTable, "id", id); err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	return nil
}

// notificationRow strips read-only columns from a write payload.
func notificationRow(n *domain.Notification) map[string]interface{} {
	row := map[string]interface{}{
		"id":              n.ID,
		"title":           n.Title,
		"message":         n.Message,
		"target_audience": n.TargetAudience,
		"status":          n.Status,
	}
	if n.ScheduledAt != nil {
		row["scheduled_at"] = n.ScheduledAt
	}
	return row
}
