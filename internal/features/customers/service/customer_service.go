package service

import (
	"context"
	"strings"

	"backoffice-api/internal/features/customers/domain"
	ordersports "backoffice-api/internal/features/orders/ports"
)

// CustomerService derives the customer list from the orders table. The list
// is recomputed from a fresh fetch on every call; nothing is cached or
// persisted, so the summaries always equal a direct recomputation.
type CustomerService struct {
	orders ordersports.OrderRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(orders ordersports.OrderRepository) *CustomerService {
	return &CustomerService{
		orders: orders,
	}
}

// List returns the aggregated customers, optionally filtered by a
// case-insensitive substring match on name or email.
func (s *CustomerService) List(ctx context.Context, term string) ([]domain.Customer, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	customers := domain.Aggregate(orders)

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return customers, nil
	}

	filtered := customers[:0]
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
