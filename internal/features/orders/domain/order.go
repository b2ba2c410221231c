package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the current state of an order.
type Status string

const (
	// StatusProcessing indicates the order has been placed and is being prepared.
	StatusProcessing Status = "processing"
	// StatusShipped indicates the order has been handed to the carrier.
	StatusShipped Status = "shipped"
	// StatusOutForDelivery indicates the order is on its final leg.
	StatusOutForDelivery Status = "out-for-delivery"
	// StatusDelivered indicates the order reached the customer.
	StatusDelivered Status = "delivered"
	// StatusCancelled is terminal; cancelled orders leave the fulfillment path.
	StatusCancelled Status = "cancelled"
)

// Statuses lists every settable status, in the order staff see them.
func Statuses() []Status {
	return []Status{
		StatusProcessing,
		StatusShipped,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Stages returns the linear fulfillment sequence. Cancelled is not a stage;
// it is a separate terminal branch.
func Stages() []Status {
	return []Status{
		StatusProcessing,
		StatusShipped,
		StatusOutForDelivery,
		StatusDelivered,
	}
}

// StageIndex returns the position of s in the fulfillment sequence, or -1
// for cancelled and for any value outside the enumeration. Display code
// treats -1 as "no stage completed".
func StageIndex(s Status) int {
	if s == StatusCancelled {
		return -1
	}
	for i, stage := range Stages() {
		if stage == s {
			return i
		}
	}
	return -1
}

// StageCompletion reports, per fulfillment stage, whether the stage is
// completed under the given status. Every stage up to and including the
// current one counts as completed; a -1 index completes nothing.
func StageCompletion(s Status) []bool {
	current := StageIndex(s)
	completed := make([]bool, len(Stages()))
	for i := range completed {
		completed[i] = i <= current && current >= 0
	}
	return completed
}

// Order represents a customer order as stored in the row store. Customer
// fields are denormalized snapshots captured at order time; there is no
// canonical customer record behind them.
type Order struct {
	// ID is the opaque row identifier.
	ID string `json:"id"`
	// OrderNumber is the human-readable identifier shown to customers.
	OrderNumber string `json:"order_number"`
	// TrackingNumber is set once a carrier accepts the shipment.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// CustomerName is the name captured at order time.
	CustomerName string `json:"customer_name"`
	// CustomerEmail identifies the customer across orders.
	CustomerEmail string `json:"customer_email"`
	// CustomerPhone may be empty.
	CustomerPhone string `json:"customer_phone,omitempty"`
	// ShippingAddress is the street address line.
	ShippingAddress string `json:"shipping_address,omitempty"`
	// City may be empty.
	City string `json:"city,omitempty"`
	// Country may be empty.
	Country string `json:"country,omitempty"`
	// Total is the order amount. The store may serialize it as a JSON
	// string; decimal handles both encodings.
	Total decimal.Decimal `json:"total"`
	// ItemsCount is the number of line items.
	ItemsCount int `json:"items_count"`
	// Status is the current fulfillment state, mutable by staff.
	Status Status `json:"status"`
	// CreatedAt is the immutable creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// OrderItem is a display-only line item belonging to one order.
type OrderItem struct {
	// ID is the opaque row identifier.
	ID string `json:"id"`
	// OrderID references the owning order.
	OrderID string `json:"order_id"`
	// ProductName is a snapshot taken at order time.
	ProductName string `json:"product_name"`
	// Quantity is the number of units.
	Quantity int `json:"quantity"`
	// Price is the unit price.
	Price decimal.Decimal `json:"price"`
}
