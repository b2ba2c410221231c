package domain

import (
	"errors"
	"time"
)

var (
	// ErrTitleRequired is returned when an event has no title.
	ErrTitleRequired = errors.New("event title is required")
	// ErrDateRequired is returned when an event has no date.
	ErrDateRequired = errors.New("event date is required")
)

// Event is a store event shown on the public site.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Validate checks the event fields before a write.
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.EventDate.IsZero() {
		return ErrDateRequired
	}
	return nil
}
