package adapters

import (
	"context"
	"fmt"

	"backoffice-api/internal/core/datastore"
	"backoffice-api/internal/features/promotions/domain"

	"github.com/google/uuid"
)

const promotionsTable = "promotions"

// StorePromotionRepository implements ports.PromotionRepository against the
// hosted row store.
type StorePromotionRepository struct {
	store *datastore.Client
}

// NewStorePromotionRepository creates a new StorePromotionRepository.
func NewStorePromotionRepository(store *datastore.Client) *StorePromotionRepository {
	return &StorePromotionRepository{
		store: store,
	}
}

// List returns all promotions, newest first.
func (r *StorePromotionRepository) List(ctx context.Context) ([]domain.Promotion, error) {
	var promotions []domain.Promotion
	err := r.store.From(promotionsTable).
		Select("*").
		OrderBy("created_at", false).
		Fetch(ctx, &promotions)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promotions, nil
}

// Insert writes a new promotion row, assigning an id when absent.
func (r *StorePromotionRepository) Insert(ctx context.Context, promotion *domain.Promotion) error {
	if promotion.ID == "" {
		promotion.ID = uuid.NewString()
	}
	if err := r.store.Insert(ctx, promotionsTable, promotionRow(promotion)); err != nil {
		return fmt.Errorf("failed to insert promotion: %w", err)
	}
	return nil
}

// Update patches an existing promotion row.
func (r *StorePromotionRepository) Update(ctx context.Context, promotion *domain.Promotion) error {
	if err := r.store.Update(ctx, promotionsTable, promotionRow(promotion), "id", promotion.ID); err != nil {
		return fmt.Errorf("failed to update promotion %s: %w", promotion.ID, err)
	}
	return nil
}

// Delete removes a promotion row.
func (r *StorePromotionRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, promotionsTable, "id", id); err != nil {
		return fmt.Errorf("failed to delete promotion %s: %w", id, err)
	}
	return nil
}

// promotionRow strips read-only columns from a write payload.
func promotionRow(p *domain.Promotion) map[string]interface{} {
	return map[string]interface{}{
		"id":             p.ID,
		"name":           p.Name,
		"description":    p.Description,
		"discount_type":  p.DiscountType,
		"discount_value": p.DiscountValue,
		"start_date":     p.StartDate,
		"end_date":       p.EndDate,
		"is_active":      p.IsActive,
	}
}
