package domain

import (
	"github.com/shopspring/decimal"

	ordersdomain "backoffice-api/internal/features/orders/domain"
)

// Customer is a summary derived from the orders sharing one email. It is
// never persisted; there is no customer table behind it.
type Customer struct {
	// Name is taken from the first order seen for the email.
	Name string `json:"customer_name"`
	// Email is the grouping key and the only customer identity.
	Email string `json:"customer_email"`
	// Phone may be empty when the first order carried none.
	Phone string `json:"customer_phone,omitempty"`
	// City may be empty.
	City string `json:"city,omitempty"`
	// Country may be empty.
	Country string `json:"country,omitempty"`
	// OrderCount is the number of orders sharing the email.
	OrderCount int `json:"order_count"`
	// TotalSpent is the sum of the order totals.
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// Aggregate projects a flat order list into one summary per distinct
// customer email, in first-seen order. Contact fields come from the first
// order observed for an email; later orders only contribute to the count
// and the spend. The projection is pure: no shared state, safe to
// recompute concurrently.
func Aggregate(orders []ordersdomain.Order) []Customer {
	index := make(map[string]int, len(orders))
	customers := make([]Customer, 0, len(orders))

	for _, order := range orders {
		if at, seen := index[order.CustomerEmail]; seen {
			customers[at].OrderCount++
			customers[at].TotalSpent = customers[at].TotalSpent.Add(order.Total)
			continue
		}

		index[order.CustomerEmail] = len(customers)
		customers = append(customers, Customer{
			Name:       order.CustomerName,
			Email:      order.CustomerEmail,
			Phone:      order.CustomerPhone,
			City:       order.City,
			Country:    order.Country,
			OrderCount: 1,
			TotalSpent: order.Total,
		})
	}

	return customers
}
