package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNameRequired is returned when a record is missing its name.
	ErrNameRequired = errors.New("name is required")
	// ErrInvalidPrice is returned for negative prices.
	ErrInvalidPrice = errors.New("price must be zero or positive")
	// ErrInvalidStock is returned for negative stock counts.
	ErrInvalidStock = errors.New("stock must be zero or positive")
)

// Product is a catalog item referencing its category.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	FeatureImageURL string          `json:"feature_image_url,omitempty"`
	CategoryID      string          `json:"category_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Validate checks the product fields before a write.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// Category groups products.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the category fields before a write.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// Brand is a product manufacturer or label.
type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the brand fields before a write.
func (b *Brand) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrNameRequired
	}
	return nil
}
