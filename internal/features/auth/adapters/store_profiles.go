package adapters

import (
	"context"
	"errors"
	"fmt"

	"backoffice-api/internal/core/datastore"
	"backoffice-api/internal/features/auth/domain"

	"github.com/google/uuid"
)

const profilesTable = "profiles"

// StoreProfileRepository implements ports.ProfileRepository against the
// hosted row store.
type StoreProfileRepository struct {
	store *datastore.Client
}

// NewStoreProfileRepository creates a new StoreProfileRepository.
func NewStoreProfileRepository(store *datastore.Client) *StoreProfileRepository {
	return &StoreProfileRepository{
		store: store,
	}
}

// GetByEmail returns the profile for an email, or nil when absent.
func (r *StoreProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.store.From(profilesTable).Select("*").Eq("email", email).One(ctx, &profile)
	if err != nil {
		if errors.Is(err, datastore.ErrRowNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Insert writes a new profile row, assigning an id when absent.
func (r *StoreProfileRepository) Insert(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	row := map[string]interface{}{
		"id":            profile.ID,
		"email":         profile.Email,
		"full_name":     profile.FullName,
		"phone":         profile.Phone,
		"verified":      profile.Verified,
		"password_hash": profile.PasswordHash,
	}
	if err := r.store.Insert(ctx, profilesTable, row); err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// MarkVerified flips the verified flag on the profile row.
func (r *StoreProfileRepository) MarkVerified(ctx context.Context, id string) error {
	patch := map[string]bool{"verified": true}
	if err := r.store.Update(ctx, profilesTable, patch, "id", id); err != nil {
		return fmt.Errorf("failed to mark profile %s verified: %w", id, err)
	}
	return nil
}

// SetPasswordHash replaces the stored password hash.
func (r *StoreProfileRepository) SetPasswordHash(ctx context.Context, id, hash string) error {
	patch := map[string]string{"password_hash": hash}
	if err := r.store.Update(ctx, profilesTable, patch, "id", id); err != nil {
		return fmt.Errorf("failed to set password for profile %s: %w", id, err)
	}
	return nil
}
