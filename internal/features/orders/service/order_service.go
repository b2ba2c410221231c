package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backoffice-api/internal/features/orders/domain"
	"backoffice-api/internal/features/orders/ports"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidStatus is returned when a status value is outside the enumeration.
var ErrInvalidStatus = errors.New("invalid order status")

// OrderService handles the business logic for listing orders and mutating
// their status.
type OrderService struct {
	// repo is the order storage port.
	repo ports.OrderRepository
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(repo ports.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// List returns all orders, or only those matching the search term when one
// is given.
func (s *OrderService) List(ctx context.Context, term string) ([]domain.Order, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, term)
}

// Get returns a single order with its line items.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, []domain.OrderItem, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, ErrOrderNotFound
	}

	items, err := s.repo.ItemsFor(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

// UpdateStatus sets a new status on the order and returns the refetched row,
// so the caller always observes the store of record rather than a local
// patch. Any enumerated value is accepted, including backward moves; only
// the timeline rendering assumes forward progress.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	return updated, nil
}
