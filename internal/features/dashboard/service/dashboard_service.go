package service

import (
	"context"

	catalogports "backoffice-api/internal/features/catalog/ports"
	ordersdomain "backoffice-api/internal/features/orders/domain"
	ordersports "backoffice-api/internal/features/orders/ports"

	"github.com/shopspring/decimal"
)

// recentCount is how many orders the dashboard shows.
const recentCount = 5

// Stats is the dashboard summary.
type Stats struct {
	ProductCount int                  `json:"product_count"`
	OrderCount   int                  `json:"order_count"`
	Revenue      decimal.Decimal      `json:"revenue"`
	RecentOrders []ordersdomain.Order `json:"recent_orders"`
}

// DashboardService computes the back-office landing page numbers.
type DashboardService struct {
	products catalogports.ProductRepository
	orders   ordersports.OrderRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(products catalogports.ProductRepository, orders ordersports.OrderRepository) *DashboardService {
	return &DashboardService{
		products: products,
		orders:   orders,
	}
}

// Stats returns product and order counts, total revenue and the most
// recent orders. Revenue sums every order total as a decimal, whatever
// the order's status.
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, order := range orders {
		revenue = revenue.Add(order.Total)
	}

	recent := orders
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}
	if recent == nil {
		recent = []ordersdomain.Order{}
	}

	return &Stats{
		ProductCount: productCount,
		OrderCount:   len(orders),
		Revenue:      revenue,
		RecentOrders: recent,
	}, nil
}
