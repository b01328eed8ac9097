package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorShopModel mirrors the 'vendor_shops' table. The unique index on
// VendorID backs the one-shop-per-vendor invariant at the storage level.
type VendorShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	District    string    `gorm:"type:varchar(100);index"`
	IsApproved  bool      `gorm:"not null;default:false"`
	IsRejected  bool      `gorm:"not null;default:false"`
	RejectedAt  *time.Time
	RejectedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorShopModel) TableName() string {
	return "vendor_shops"
}
