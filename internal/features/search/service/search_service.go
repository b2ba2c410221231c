package service

import (
	"context"
	"strings"

	catalogdomain "backoffice-api/internal/features/catalog/domain"
	catalogports "backoffice-api/internal/features/catalog/ports"
	ordersdomain "backoffice-api/internal/features/orders/domain"
	ordersports "backoffice-api/internal/features/orders/ports"
)

// resultLimit caps each section of the grouped reply.
const resultLimit = 10

// Result is the grouped reply for a global search.
type Result struct {
	Products []catalogdomain.Product `json:"products"`
	Brands   []catalogdomain.Brand   `json:"brands"`
	Orders   []ordersdomain.Order    `json:"orders"`
}

// SearchService answers the back-office global search box. It fans the
// term out to products, brands and orders and groups the hits.
type SearchService struct {
	products catalogports.ProductRepository
	brands   catalogports.BrandRepository
	orders   ordersports.OrderRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(products catalogports.ProductRepository, brands catalogports.BrandRepository, orders ordersports.OrderRepository) *SearchService {
	return &SearchService{
		products: products,
		brands:   brands,
		orders:   orders,
	}
}

// Search returns grouped hits for a term. An empty term yields an empty
// result without touching the store.
func (s *SearchService) Search(ctx context.Context, term string) (*Result, error) {
	result := &Result{
		Products: []catalogdomain.Product{},
		Brands:   []catalogdomain.Brand{},
		Orders:   []ordersdomain.Order{},
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return result, nil
	}

	products, err := s.products.SearchByName(ctx, term, resultLimit)
	if err != nil {
		return nil, err
	}
	if products != nil {
		result.Products = products
	}

	brands, err := s.brands.SearchByName(ctx, term, resultLimit)
	if err != nil {
		return nil, err
	}
	if brands != nil {
		result.Brands = brands
	}

	orders, err := s.orders.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(orders) > resultLimit {
		orders = orders[:resultLimit]
	}
	if orders != nil {
		result.Orders = orders
	}

	return result, nil
}
