package ports

import (
	"context"

	"backoffice-api/internal/features/promotions/domain"
)

// PromotionRepository defines the secondary port for promotion storage.
type PromotionRepository interface {
	// List returns all promotions, newest first.
	List(ctx context.Context) ([]domain.Promotion, error)
	// Insert writes a new promotion row.
	Insert(ctx context.Context, promotion *domain.Promotion) error
	// Update patches an existing promotion row.
	Update(ctx context.Context, promotion *domain.Promotion) error
	// Delete removes a promotion row.
	Delete(ctx context.Context, id string) error
}
