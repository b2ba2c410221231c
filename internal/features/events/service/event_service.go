package service

import (
	"context"

	"backoffice-api/internal/features/events/domain"
	"backoffice-api/internal/features/events/ports"
)

// EventService handles store events.
type EventService struct {
	repo ports.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(repo ports.EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// List returns all events ordered by event date, soonest first.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

// Save validates and writes an event; one without an ID is inserted,
// otherwise updated.
func (s *EventService) Save(ctx context.Context, event *domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.ID == "" {
		return s.repo.Insert(ctx, event)
	}
	return s.repo.Update(ctx, event)
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
