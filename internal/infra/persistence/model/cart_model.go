package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. One line per (customer,
// product); merges happen in the use case.
type CartItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_customer_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_customer_product"`
	Quantity   int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// WishlistItemModel mirrors the 'wishlist_items' table. The unique index
// backs the at-most-once-per-product rule.
type WishlistItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_customer_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_customer_product"`
	CreatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
