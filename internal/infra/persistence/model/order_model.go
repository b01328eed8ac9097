package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. The shipping address is a JSON
// document written once at checkout.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(32);not null;index"`
	ShippingAddress datatypes.JSON
	District        string `gorm:"type:varchar(100);index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Customer *UserModel        `gorm:"foreignKey:CustomerID"`
	Items    []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and price are
// snapshots taken at checkout; ShopID is denormalized for vendor scoping.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ShopID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Quantity    int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
