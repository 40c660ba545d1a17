// Package model holds the GORM-specific persistence structs. They mirror the
// database schema and are mapped to/from pure domain entities by the
// repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs match the identity provider's
// 'sub' claim, so rows are created with an explicit UUID rather than a
// database default.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Username  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	Roles     []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Assets []*AssetModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
