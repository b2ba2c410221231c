package adapters

import (
	"context"
	"errors"
	"fmt"

	"backoffice-api/internal/core/datastore"
	"backoffice-api/internal/features/orders/domain"
)

const (
	ordersTable = "orders"
	itemsTable  = "order_items"
)

// StoreOrderRepository implements ports.OrderRepository against the hosted
// row store.
type StoreOrderRepository struct {
	store *datastore.Client
}

// NewStoreOrderRepository creates a new StoreOrderRepository.
func NewStoreOrderRepository(store *datastore.Client) *StoreOrderRepository {
	return &StoreOrderRepository{
		store: store,
	}
}

// List returns all orders, newest first.
func (r *StoreOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.store.From(ordersTable).
		Select("*").
		OrderBy("created_at", false).
		Fetch(ctx, &orders)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Search matches term against the order number and the customer name.
func (r *StoreOrderRepository) Search(ctx context.Context, term string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.store.From(ordersTable).
		Select("*").
		Or(fmt.Sprintf("customer_name.ilike.*%s*,order_number.ilike.*%s*", term, term)).
		OrderBy("created_at", false).
		Fetch(ctx, &orders)
	if err != nil {
		return nil, fmt.Errorf("failed to search orders: %w", err)
	}
	return orders, nil
}

// GetByID returns one order by row id, or nil when it does not exist.
func (r *StoreOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.store.From(ordersTable).Select("*").Eq("id", id).One(ctx, &order)
	if err != nil {
		if errors.Is(err, datastore.ErrRowNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

// GetByNumber returns one order by its human-readable number.
func (r *StoreOrderRepository) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	var order domain.Order
	err := r.store.From(ordersTable).Select("*").Eq("order_number", number).One(ctx, &order)
	if err != nil {
		if errors.Is(err, datastore.ErrRowNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order %s: %w", number, err)
	}
	return &order, nil
}

// ItemsFor returns the order's line items.
func (r *StoreOrderRepository) ItemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	err := r.store.From(itemsTable).
		Select("*").
		Eq("order_id", orderID).
		Fetch(ctx, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for order %s: %w", orderID, err)
	}
	return items, nil
}

// SetStatus writes the status column on the order row.
func (r *StoreOrderRepository) SetStatus(ctx context.Context, id string, status domain.Status) error {
	patch := map[string]string{"status": string(status)}
	if err := r.store.Update(ctx, ordersTable, patch, "id", id); err != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, err)
	}
	return nil
}
