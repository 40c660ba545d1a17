package postgres

import (
	"context"
	"log/slog"

	"dealroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Seed populates demo users and assets for local development. It is a no-op
// when the tables already hold data, so repeated startups are safe.
func Seed(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	var userCount int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).Count(&userCount).Error; err != nil {
		return errors.Wrap(err, "failed to count users for seeding")
	}

	if userCount > 0 {
		return nil
	}

	seller := &model.UserModel{
		ID:       uuid.New(),
		Username: "demo-seller",
		Email:    "seller@example.com",
		IsActive: true,
		Roles:    []string{"seller"},
	}
	buyer := &model.UserModel{
		ID:       uuid.New(),
		Username: "demo-buyer",
		Email:    "buyer@example.com",
		IsActive: true,
		Roles:    []string{"buyer"},
	}
	admin := &model.UserModel{
		ID:       uuid.New(),
		Username: "demo-admin",
		Email:    "admin@example.com",
		IsActive: true,
		Roles:    []string{"admin"},
	}

	if err := db.WithContext(ctx).Create([]*model.UserModel{seller, buyer, admin}).Error; err != nil {
		return errors.Wrap(err, "failed to seed users")
	}

	price := 1000.00
	assets := []*model.AssetModel{
		{
			Name:        "Demo Asset 1",
			Description: "Description for Demo Asset 1",
			OwnerID:     seller.ID,
		},
		{
			Name:        "Demo Asset 2",
			Description: "Description for Demo Asset 2",
			OwnerID:     seller.ID,
			ForSale:     true,
			Price:       &price,
		},
		{
			Name:        "Demo Asset 3",
			Description: "Description for Demo Asset 3",
			OwnerID:     buyer.ID,
		},
	}

	if err := db.WithContext(ctx).Create(assets).Error; err != nil {
		return errors.Wrap(err, "failed to seed assets")
	}

	logger.InfoContext(ctx, "Seeded demo data",
		slog.Int("users", 3),
		slog.Int("assets", len(assets)),
	)

	return nil
}
