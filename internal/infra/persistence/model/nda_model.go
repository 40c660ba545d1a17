package model

import (
	"time"

	"github.com/google/uuid"
)

// NDAModel mirrors the 'ndas' table. The composite unique index on
// (asset_id, nda_number) is what turns a concurrent sequence-number race
// into a detectable insert conflict instead of a lost update.
type NDAModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AssetID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ndas_asset_number"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	NDANumber   int       `gorm:"not null;uniqueIndex:idx_ndas_asset_number"`
	Status      string    `gorm:"type:varchar(20);not null"`
	RequestedAt time.Time `gorm:"not null"`
	SignedAt    *time.Time
	ConfirmedAt *time.Time

	Asset *AssetModel `gorm:"foreignKey:AssetID;constraint:OnDelete:RESTRICT"`
	Buyer *UserModel  `gorm:"foreignKey:BuyerID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (NDAModel) TableName() string {
	return "ndas"
}
