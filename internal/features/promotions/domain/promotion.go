package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNameRequired is returned when a promotion has no name.
	ErrNameRequired = errors.New("promotion name is required")
	// ErrInvalidDiscountType is returned for unknown discount types.
	ErrInvalidDiscountType = errors.New("discount type must be percentage or fixed")
	// ErrInvalidDiscountValue is returned when the discount value is not positive.
	ErrInvalidDiscountValue = errors.New("discount value must be greater than zero")
	// ErrInvalidDateRange is returned when the end date does not come after the start.
	ErrInvalidDateRange = errors.New("end date must be after start date")
)

// DiscountType is how a promotion's discount value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Promotion is a time-bounded discount campaign.
type Promotion struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at,omitempty"`
}

// Validate checks the promotion fields before a write.
func (p *Promotion) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.DiscountType != DiscountPercentage && p.DiscountType != DiscountFixed {
		return ErrInvalidDiscountType
	}
	if !p.DiscountValue.IsPositive() {
		return ErrInvalidDiscountValue
	}
	if !p.EndDate.After(p.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}
