package main

import (
	"context"
	"log/slog"
	"os"

	"dealroom/config"
	"dealroom/internal/delivery"
	"dealroom/internal/delivery/http"
	"dealroom/internal/delivery/http/middleware"
	"dealroom/internal/delivery/http/router/handler"
	"dealroom/internal/domain/service"
	"dealroom/internal/infra/auth"
	logs "dealroom/internal/infra/log"
	"dealroom/internal/infra/persistence/postgres"
	"dealroom/internal/infra/storage"
	"dealroom/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDemoData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAssetRepository,
			postgres.NewNDARepository,
			postgres.NewTransactionRepository,
			postgres.NewInvitationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenVerifier,
			storage.NewS3Store,
		),
	)
}

// newTokenVerifier selects the verifier implementation from configuration.
// A shared secret switches to the HS256 development verifier; production
// deployments leave it unset and verify against the provider's key set.
func newTokenVerifier(cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Auth != nil && cfg.Auth.SharedSecret != "" {
		logger.Warn("Using shared-secret token verifier, do not use in production")

		return auth.NewSharedSecretVerifier(cfg)
	}

	return auth.NewJWKSVerifier(cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAssetService,
			impl.NewNDAService,
			impl.NewDataRoomService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAssetHandler,
			handler.NewNDAHandler,
			handler.NewDataRoomHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedDemoData loads the demo accounts and assets when enabled. It runs as
// a start hook so migrations have already been applied, and is a no-op on a
// populated database.
func seedDemoData(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) {
	if cfg.Seed == nil || !cfg.Seed.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return postgres.Seed(ctx, db, logger)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
