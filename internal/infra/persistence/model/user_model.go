// Package model holds the GORM persistence models mirroring the PostgreSQL
// schema. Mapping to and from domain entities happens in the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	Role      string    `gorm:"type:varchar(32);not null;index"`
	District  string    `gorm:"type:varchar(100);index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Shop *VendorShopModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
