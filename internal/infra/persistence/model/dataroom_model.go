package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table holding completed purchases.
type TransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AssetID   uuid.UUID `gorm:"type:uuid;not null;index:idx_transactions_asset_buyer"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_transactions_asset_buyer"`
	Amount    float64   `gorm:"not null"`
	CreatedAt time.Time

	Asset *AssetModel `gorm:"foreignKey:AssetID;constraint:OnDelete:RESTRICT"`
	Buyer *UserModel  `gorm:"foreignKey:BuyerID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// PrivateInvitationModel mirrors the 'private_invitations' table.
type PrivateInvitationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AssetID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invitations_asset_user"`
	InvitedUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invitations_asset_user"`
	CreatedAt     time.Time

	Asset       *AssetModel `gorm:"foreignKey:AssetID;constraint:OnDelete:RESTRICT"`
	InvitedUser *UserModel  `gorm:"foreignKey:InvitedUserID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (PrivateInvitationModel) TableName() string {
	return "private_invitations"
}
