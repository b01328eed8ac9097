package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item owned by one vendor shop.
type Product struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	Name        string
	Description string
	Price       float64
	// Category keeps the legacy free-text label; CategoryID links to the
	// managed taxonomy when set.
	Category   string
	CategoryID *uuid.UUID
	StockCount int
	Images     []string // Ordered image URLs.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InStock is derived from the stock count; it is never stored.
func (p *Product) InStock() bool {
	return p.StockCount > 0
}

// Category is a managed taxonomy entry maintained by admins.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	// ProductCount is derived at read time: in-stock products of approved
	// vendors referencing this category.
	ProductCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
