package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Images are stored as a JSON
// array of URLs.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	StockCount  int        `gorm:"not null;default:0"`
	Images      datatypes.JSON
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Shop *VendorShopModel `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel mirrors the 'categories' table. ProductCount is never stored;
// listings derive it with a join.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// ProductCount is populated by the listing query, not a column.
	ProductCount int `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
