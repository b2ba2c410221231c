package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice-api/internal/core/datastore"
	"backoffice-api/internal/features/users/domain"

	"github.com/google/uuid"
)

const (
	profilesTable  = "profiles"
	userRolesTable = "user_roles"
)

// StoreUserRepository implements ports.UserRepository against the hosted
// row store. Profiles and role rows live in separate tables and are
// joined here, two fetches per listing.
type StoreUserRepository struct {
	store *datastore.Client
}

// NewStoreUserRepository creates a new StoreUserRepository.
func NewStoreUserRepository(store *datastore.Client) *StoreUserRepository {
	return &StoreUserRepository{
		store: store,
	}
}

// profileRow is the read shape of a profile.
type profileRow struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// roleRow is the read shape of a role assignment.
type roleRow struct {
	ID     string      `json:"id,omitempty"`
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// List returns all profiles with their roles, newest first.
func (r *StoreUserRepository) List(ctx context.Context) ([]domain.User, error) {
	var profiles []profileRow
	err := r.store.From(profilesTable).
		Select("*").
		OrderBy("created_at", false).
		Fetch(ctx, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	var roles []roleRow
	if err := r.store.From(userRolesTable).Select("*").Fetch(ctx, &roles); err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}

	byUser := make(map[string][]domain.Role)
	for _, row := range roles {
		byUser[row.UserID] = append(byUser[row.UserID], row.Role)
	}

	users := make([]domain.User, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, toUser(p, byUser[p.ID]))
	}
	return users, nil
}

// GetByID returns a profile with its roles, or nil when absent.
func (r *StoreUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var profile profileRow
	err := r.store.From(profilesTable).
		Select("*").
		Eq("id", id).
		One(ctx, &profile)
	if err != nil {
		if errors.Is(err, datastore.ErrRowNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile %s: %w", id, err)
	}

	var roles []roleRow
	err = r.store.From(userRolesTable).
		Select("*").
		Eq("user_id", id).
		Fetch(ctx, &roles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles for %s: %w", id, err)
	}

	names := make([]domain.Role, 0, len(roles))
	for _, row := range roles {
		names = append(names, row.Role)
	}

	user := toUser(profile, names)
	return &user, nil
}

// ReplaceRole removes the user's role rows, then inserts the new one.
// The order matters: a user must never end up with two roles.
func (r *StoreUserRepository) ReplaceRole(ctx context.Context, userID string, role domain.Role) error {
	if err := r.store.Delete(ctx, userRolesTable, "user_id", userID); err != nil {
		return fmt.Errorf("failed to clear roles for %s: %w", userID, err)
	}

	row := roleRow{ID: uuid.NewString(), UserID: userID, Role: role}
	if err := r.store.Insert(ctx, userRolesTable, row); err != nil {
		return fmt.Errorf("failed to assign role for %s: %w", userID, err)
	}
	return nil
}

// RemoveRoles removes all role rows for the user.
func (r *StoreUserRepository) RemoveRoles(ctx context.Context, userID string) error {
	if err := r.store.Delete(ctx, userRolesTable, "user_id", userID); err != nil {
		return fmt.Errorf("failed to remove roles for %s: %w", userID, err)
	}
	return nil
}

// DeleteProfile removes the profile row.
func (r *StoreUserRepository) DeleteProfile(ctx context.Context, userID string) error {
	if err := r.store.Delete(ctx, profilesTable, "id", userID); err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", userID, err)
	}
	return nil
}

func toUser(p profileRow, roles []domain.Role) domain.User {
	if roles == nil {
		roles = []domain.Role{}
	}
	return domain.User{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Roles:     roles,
		CreatedAt: p.CreatedAt,
	}
}
