package adapters

import (
	"context"
	"fmt"

	"backoffice-api/internal/core/datastore"
	"backoffice-api/internal/features/events/domain"

	"github.com/google/uuid"
)

const eventsTable = "events"

// StoreEventRepository implements ports.EventRepository against the hosted
// row store.
type StoreEventRepository struct {
	store *datastore.Client
}

// NewStoreEventRepository creates a new StoreEventRepository.
func NewStoreEventRepository(store *datastore.Client) *StoreEventRepository {
	return &StoreEventRepository{
		store: store,
	}
}

// List returns all events ordered by event date, soonest first.
func (r *StoreEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	err := r.store.From(eventsTable).
		Select("*").
		OrderBy("event_date", true).
		Fetch(ctx, &events)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Insert writes a new event row, assigning an id when absent.
func (r *StoreEventRepository) Insert(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := r.store.Insert(ctx, eventsTable, eventRow(event)); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Update patches an existing event row.
func (r *StoreEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if err := r.store.Update(ctx, eventsTable, eventRow(event), "id", event.ID); err != nil {
		return fmt.Errorf("failed to update event %s: %w", event.ID, err)
	}
	return nil
}

// Delete removes an event row.
func (r *StoreEventRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, eventsTable, "id", id); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}

// eventRow strips read-only columns from a write payload.
func eventRow(e *domain.Event) map[string]interface{} {
	return map[string]interface{}{
		"id":           e.ID,
		"title":        e.Title,
		"description":  e.Description,
		"event_date":   e.EventDate,
		"location":     e.Location,
		"image_url":    e.ImageURL,
		"is_published": e.IsPublished,
	}
}
