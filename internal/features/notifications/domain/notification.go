package domain

import (
	"errors"
	"time"
)

var (
	// ErrTitleRequired is returned when a notification has no title.
	ErrTitleRequired = errors.New("notification title is required")
	// ErrMessageRequired is returned when a notification has no message body.
	ErrMessageRequired = errors.New("notification message is required")
	// ErrInvalidAudience is returned for unknown target audiences.
	ErrInvalidAudience = errors.New("target audience must be all, customers or subscribers")
	// ErrAlreadySent is returned when sending a notification twice.
	ErrAlreadySent = errors.New("notification was already sent")
)

// Audience is who a notification is delivered to.
type Audience string

const (
	AudienceAll         Audience = "all"
	AudienceCustomers   Audience = "customers"
	AudienceSubscribers Audience = "subscribers"
)

// Status is the lifecycle state of a notification.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
)

// Notification is an announcement pushed to storefront users.
type Notification struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	TargetAudience Audience   `json:"target_audience"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"created_at,omitempty"`
}

// Validate checks the notification fields before a write.
func (n *Notification) Validate() error {
	if n.Title == "" {
		return ErrTitleRequired
	}
	if n.Message == "" {
		return ErrMessageRequired
	}
	switch n.TargetAudience {
	case AudienceAll, AudienceCustomers, AudienceSubscribers:
		return nil
	default:
		return ErrInvalidAudience
	}
}
