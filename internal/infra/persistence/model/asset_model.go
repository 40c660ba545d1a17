package model

import (
	"time"

	"github.com/google/uuid"
)

// AssetModel mirrors the 'assets' table.
type AssetModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:varchar(1024)"`
	ForSale        bool      `gorm:"not null;default:false"`
	Price          *float64
	AdditionalInfo string    `gorm:"type:varchar(1024)"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}
