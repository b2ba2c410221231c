package ports

import (
	"context"
	"time"

	"backoffice-api/internal/features/notifications/domain"
)

// NotificationRepository defines the secondary port for notification storage.
type NotificationRepository interface {
	// List returns all notifications, newest first.
	List(ctx context.Context) ([]domain.Notification, error)
	// GetByID returns a notification, or nil when absent.
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	// Insert writes a new notification row.
	Insert(ctx context.Context, notification *domain.Notification) error
	// Update patches an existing notification row.
	Update(ctx context.Context, notification *domain.Notification) error
	// MarkSent flips the status to sent and stamps the send time.
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
	// Delete removes a notification row.
	Delete(ctx context.Context, id string) error
}
