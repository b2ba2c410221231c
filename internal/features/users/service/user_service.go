package service

import (
	"context"

	"backoffice-api/internal/features/users/domain"
	"backoffice-api/internal/features/users/ports"
)

// UserService handles back-office profiles and role assignments.
type UserService struct {
	repo ports.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// List returns all profiles with their roles.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// AssignRole replaces the user's role and returns the refetched user.
func (s *UserService) AssignRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.repo.ReplaceRole(ctx, userID, role); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID)
}

// RemoveRole strips all roles from the user and returns the refetched user.
func (s *UserService) RemoveRole(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.repo.RemoveRoles(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID)
}

// Delete removes the user's role rows, then the profile.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if err := s.repo.RemoveRoles(ctx, userID); err != nil {
		return err
	}
	return s.repo.DeleteProfile(ctx, userID)
}

// PermissionRow is one line of the settings permission table.
type PermissionRow struct {
	Permission domain.Permission `json:"permission"`
	Roles      []domain.Role     `json:"roles"`
}

// PermissionMatrix returns the full permission table in display order.
func (s *UserService) PermissionMatrix() []PermissionRow {
	perms := domain.Permissions()
	rows := make([]PermissionRow, 0, len(perms))
	for _, p := range perms {
		rows = append(rows, PermissionRow{Permission: p, Roles: domain.RolesFor(p)})
	}
	return rows
}
