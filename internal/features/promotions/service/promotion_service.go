package service

import (
	"context"

	"backoffice-api/internal/features/promotions/domain"
	"backoffice-api/internal/features/promotions/ports"
)

// PromotionService handles discount campaigns.
type PromotionService struct {
	repo ports.PromotionRepository
}

// NewPromotionService creates a new PromotionService.
func NewPromotionService(repo ports.PromotionRepository) *PromotionService {
	return &PromotionService{
		repo: repo,
	}
}

// List returns all promotions, newest first.
func (s *PromotionService) List(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.List(ctx)
}

// Save validates and writes a promotion; one without an ID is inserted,
// otherwise updated.
func (s *PromotionService) Save(ctx context.Context, promotion *domain.Promotion) error {
	if err := promotion.Validate(); err != nil {
		return err
	}
	if promotion.ID == "" {
		return s.repo.Insert(ctx, promotion)
	}
	return s.repo.Update(ctx, promotion)
}

// Delete removes a promotion.
func (s *PromotionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
