package ports

import (
	"context"
	"time"

	"backoffice-api/internal/features/auth/domain"
)

// ProfileRepository defines the secondary port for account storage.
type ProfileRepository interface {
	// GetByEmail returns the profile for an email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	// Insert writes a new profile row.
	Insert(ctx context.Context, profile *domain.Profile) error
	// MarkVerified flips the verified flag on the profile.
	MarkVerified(ctx context.Context, id string) error
	// SetPasswordHash replaces the stored password hash.
	SetPasswordHash(ctx context.Context, id, hash string) error
}

// CodeStore defines the secondary port for passcodes, cooldowns and
// revocable sessions.
type CodeStore interface {
	// SaveCode stores the passcode for an email with a TTL, replacing any
	// previous one.
	SaveCode(ctx context.Context, email, code string, ttl time.Duration) error
	// PeekCode returns the stored passcode without consuming it. Returns
	// empty when none is stored.
	PeekCode(ctx context.Context, email string) (string, error)
	// ConsumeCode removes the stored passcode.
	ConsumeCode(ctx context.Context, email string) error
	// ArmCooldown arms the resend cooldown; returns false when one is
	// already running.
	ArmCooldown(ctx context.Context, email string, ttl time.Duration) (bool, error)
	// SaveSession registers a session id so it can be revoked.
	SaveSession(ctx context.Context, sessionID string, ttl time.Duration) error
	// RevokeSession removes a session id.
	RevokeSession(ctx context.Context, sessionID string) error
	// SessionActive reports whether a session id is registered.
	SessionActive(ctx context.Context, sessionID string) (bool, error)
}

// Mailer defines the secondary port for outbound mail.
type Mailer interface {
	// Send delivers a plain-text mail.
	Send(to, subject, body string) error
}
