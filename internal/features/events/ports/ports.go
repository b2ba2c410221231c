package ports

import (
	"context"

	"backoffice-api/internal/features/events/domain"
)

// EventRepository defines the secondary port for event storage.
type EventRepository interface {
	// List returns all events ordered by event date, soonest first.
	List(ctx context.Context) ([]domain.Event, error)
	// Insert writes a new event row.
	Insert(ctx context.Context, event *domain.Event) error
	// Update patches an existing event row.
	Update(ctx context.Context, event *domain.Event) error
	// Delete removes an event row.
	Delete(ctx context.Context, id string) error
}
