package service

import (
	"context"
	"strings"

	"backoffice-api/internal/features/catalog/domain"
	"backoffice-api/internal/features/catalog/ports"
)

// CatalogService handles products, categories and brands. Every mutation is
// validated first and followed by a fresh list fetch at the handler, never a
// local patch.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	brands     ports.BrandRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, brands ports.BrandRepository) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		brands:     brands,
	}
}

// ListProducts returns all products, optionally filtered by name.
func (s *CatalogService) ListProducts(ctx context.Context, term string) ([]domain.Product, error) {
	term = strings.TrimSpace(term)
	if term != "" {
		return s.products.SearchByName(ctx, term, 50)
	}
	return s.products.List(ctx)
}

// SaveProduct validates and writes a product; a product without an ID is
// inserted, otherwise updated.
func (s *CatalogService) SaveProduct(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if product.ID == "" {
		return s.products.Insert(ctx, product)
	}
	return s.products.Update(ctx, product)
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// SaveCategory validates and writes a category.
func (s *CatalogService) SaveCategory(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if category.ID == "" {
		return s.categories.Insert(ctx, category)
	}
	return s.categories.Update(ctx, category)
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// ListBrands returns all brands.
func (s *CatalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.List(ctx)
}

// SaveBrand validates and writes a brand.
func (s *CatalogService) SaveBrand(ctx context.Context, brand *domain.Brand) error {
	if err := brand.Validate(); err != nil {
		return err
	}
	if brand.ID == "" {
		return s.brands.Insert(ctx, brand)
	}
	return s.brands.Update(ctx, brand)
}

// DeleteBrand removes a brand.
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	return s.brands.Delete(ctx, id)
}
