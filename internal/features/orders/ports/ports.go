package ports

import (
	"context"

	"backoffice-api/internal/features/orders/domain"
)

// OrderRepository defines the secondary port for order storage.
type OrderRepository interface {
	// List returns all orders, newest first.
	List(ctx context.Context) ([]domain.Order, error)
	// Search returns orders whose number or customer name contains term.
	Search(ctx context.Context, term string) ([]domain.Order, error)
	// GetByID returns one order by its row id.
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// GetByNumber returns one order by its human-readable number.
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	// ItemsFor returns the line items belonging to an order.
	ItemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	// SetStatus writes a new status on the order row.
	SetStatus(ctx context.Context, id string, status domain.Status) error
}
