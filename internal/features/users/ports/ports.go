package ports

import (
	"context"

	"backoffice-api/internal/features/users/domain"
)

// UserRepository defines the secondary port for profiles and their roles.
type UserRepository interface {
	// List returns all profiles with their roles, newest first.
	List(ctx context.Context) ([]domain.User, error)
	// GetByID returns a profile with its roles, or nil when absent.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ReplaceRole removes the user's role rows and inserts the new one.
	ReplaceRole(ctx context.Context, userID string, role domain.Role) error
	// RemoveRoles removes all role rows for the user.
	RemoveRoles(ctx context.Context, userID string) error
	// DeleteProfile removes the profile row.
	DeleteProfile(ctx context.Context, userID string) error
}
