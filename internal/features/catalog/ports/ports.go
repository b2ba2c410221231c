package ports

import (
	"context"

	"backoffice-api/internal/features/catalog/domain"
)

// ProductRepository defines the secondary port for product storage.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	SearchByName(ctx context.Context, term string, limit int) ([]domain.Product, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the secondary port for category storage.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// BrandRepository defines the secondary port for brand storage.
type BrandRepository interface {
	List(ctx context.Context) ([]domain.Brand, error)
	SearchByName(ctx context.Context, term string, limit int) ([]domain.Brand, error)
	Insert(ctx context.Context, brand *domain.Brand) error
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id string) error
}
