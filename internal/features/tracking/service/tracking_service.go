package service

import (
	"context"
	"errors"

	ordersdomain "backoffice-api/internal/features/orders/domain"
	ordersports "backoffice-api/internal/features/orders/ports"
	"backoffice-api/internal/features/tracking/domain"
)

// ErrOrderNotFound is returned when no order carries the given number.
var ErrOrderNotFound = errors.New("order not found")

// TrackingService serves the public order-tracking lookup.
type TrackingService struct {
	orders ordersports.OrderRepository
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(orders ordersports.OrderRepository) *TrackingService {
	return &TrackingService{
		orders: orders,
	}
}

// Result is the public view of a tracked order.
type Result struct {
	Order    ordersdomain.Order       `json:"order"`
	Items    []ordersdomain.OrderItem `json:"items"`
	Timeline domain.Timeline          `json:"timeline"`
}

// Track looks up an order by its human-readable number and renders its
// fulfillment timeline.
func (s *TrackingService) Track(ctx context.Context, orderNumber string) (*Result, error) {
	order, err := s.orders.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	items, err := s.orders.ItemsFor(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &Result{
		Order:    *order,
		Items:    items,
		Timeline: domain.BuildTimeline(order.Status),
	}, nil
}
