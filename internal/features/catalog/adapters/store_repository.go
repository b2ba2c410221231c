package adapters

import (
	"context"
	"fmt"

	"backoffice-api/internal/core/datastore"
	"backoffice-api/internal/features/catalog/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	productsTable   = "products"
	categoriesTable = "categories"
	brandsTable     = "brands"
)

// StoreCatalogRepository implements the catalog repository ports against the
// hosted row store.
type StoreCatalogRepository struct {
	store *datastore.Client
}

// NewStoreCatalogRepository creates a new StoreCatalogRepository.
func NewStoreCatalogRepository(store *datastore.Client) *StoreCatalogRepository {
	return &StoreCatalogRepository{
		store: store,
	}
}

// productRow is the wire shape for product writes.
type productRow struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	FeatureImageURL string          `json:"feature_image_url,omitempty"`
	CategoryID      string          `json:"category_id,omitempty"`
}

// List returns all products, newest first.
func (r *StoreCatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.store.From(productsTable).
		Select("*").
		OrderBy("created_at", false).
		Fetch(ctx, &products)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// SearchByName returns products whose name contains term.
func (r *StoreCatalogRepository) SearchByName(ctx context.Context, term string, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.store.From(productsTable).
		Select("*").
		Ilike("name", term).
		Limit(limit).
		Fetch(ctx, &products)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// Count returns the number of product rows.
func (r *StoreCatalogRepository) Count(ctx context.Context) (int, error) {
	var ids []struct {
		ID string `json:"id"`
	}
	if err := r.store.From(productsTable).Select("id").Fetch(ctx, &ids); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return len(ids), nil
}

// Insert writes a new product row, assigning an id when absent.
func (r *StoreCatalogRepository) Insert(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	row := productRow{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		Stock:           product.Stock,
		FeatureImageURL: product.FeatureImageURL,
		CategoryID:      product.CategoryID,
	}
	if err := r.store.Insert(ctx, productsTable, row); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// Update patches an existing product row.
func (r *StoreCatalogRepository) Update(ctx context.Context, product *domain.Product) error {
	row := productRow{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		Stock:           product.Stock,
		FeatureImageURL: product.FeatureImageURL,
		CategoryID:      product.CategoryID,
	}
	if err := r.store.Update(ctx, productsTable, row, "id", product.ID); err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	return nil
}

// Delete removes a product row.
func (r *StoreCatalogRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, productsTable, "id", id); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// StoreCategoryRepository implements ports.CategoryRepository.
type StoreCategoryRepository struct {
	store *datastore.Client
}

// NewStoreCategoryRepository creates a new StoreCategoryRepository.
func NewStoreCategoryRepository(store *datastore.Client) *StoreCategoryRepository {
	return &StoreCategoryRepository{
		store: store,
	}
}

// List returns all categories, newest first.
func (r *StoreCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.store.From(categoriesTable).
		Select("*").
		OrderBy("created_at", false).
		Fetch(ctx, &categories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Insert writes a new category row, assigning an id when absent.
func (r *StoreCategoryRepository) Insert(ctx context.Context, category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	row := map[string]string{
		"id":          category.ID,
		"name":        category.Name,
		"description": category.Description,
		"image_url":   category.ImageURL,
	}
	if err := r.store.Insert(ctx, categoriesTable, row); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// Update patches an existing category row.
func (r *StoreCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	row := map[string]string{
		"name":        category.Name,
		"description": category.Description,
		"image_url":   category.ImageURL,
	}
	if err := r.store.Update(ctx, categoriesTable, row, "id", category.ID); err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.ID, err)
	}
	return nil
}

// Delete removes a category row.
func (r *StoreCategoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, categoriesTable, "id", id); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}

// StoreBrandRepository implements ports.BrandRepository.
type StoreBrandRepository struct {
	store *datastore.Client
}

// NewStoreBrandRepository creates a new StoreBrandRepository.
func NewStoreBrandRepository(store *datastore.Client) *StoreBrandRepository {
	return &StoreBrandRepository{
		store: store,
	}
}

// List returns all brands, newest first.
func (r *StoreBrandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	err := r.store.From(brandsTable).
		Select("*").
		OrderBy("created_at", false).
		Fetch(ctx, &brands)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// SearchByName returns brands whose name contains term.
func (r *StoreBrandRepository) SearchByName(ctx context.Context, term string, limit int) ([]domain.Brand, error) {
	var brands []domain.Brand
	err := r.store.From(brandsTable).
		Select("*").
		Ilike("name", term).
		Limit(limit).
		Fetch(ctx, &brands)
	if err != nil {
		return nil, fmt.Errorf("failed to search brands: %w", err)
	}
	return brands, nil
}

// Insert writes a new brand row, assigning an id when absent.
func (r *StoreBrandRepository) Insert(ctx context.Context, brand *domain.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.NewString()
	}
	row := map[string]string{
		"id":       brand.ID,
		"name":     brand.Name,
		"logo_url": brand.LogoURL,
	}
	if err := r.store.Insert(ctx, brandsTable, row); err != nil {
		return fmt.Errorf("failed to insert brand: %w", err)
	}
	return nil
}

// Update patches an existing brand row.
func (r *StoreBrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	row := map[string]string{
		"name":     brand.Name,
		"logo_url": brand.LogoURL,
	}
	if err := r.store.Update(ctx, brandsTable, row, "id", brand.ID); err != nil {
		return fmt.Errorf("failed to update brand %s: %w", brand.ID, err)
	}
	return nil
}

// Delete removes a brand row.
func (r *StoreBrandRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, brandsTable, "id", id); err != nil {
		return fmt.Errorf("failed to delete brand %s: %w", id, err)
	}
	return nil
}
