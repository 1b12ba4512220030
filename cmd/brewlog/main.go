// Command brewlog serves the bean-analysis gateway API.
package main

import (
	"context"

	"brewlog/config"
	"brewlog/internal/delivery"
	"brewlog/internal/delivery/api"
	"brewlog/internal/delivery/api/middleware"
	"brewlog/internal/delivery/api/router/handler"
	"brewlog/internal/infra/auth"
	"brewlog/internal/infra/blob"
	"brewlog/internal/infra/crypto"
	logs "brewlog/internal/infra/log"
	"brewlog/internal/infra/persistence/postgres"
	"brewlog/internal/infra/pubsub"
	"brewlog/internal/infra/quota"
	"brewlog/internal/infra/vision"
	"brewlog/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		infra(),
		storage(),
		services(),
		usecases(),
		httpLayer(),
		delivery.Provide(api.NewServer),
		fx.Invoke(delivery.Launch),
	).Run()
}

func infra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func storage() fx.Option {
	return fx.Provide(
		postgres.NewCredentialRepository,
		postgres.NewAnalysisRepository,
		postgres.NewTransactionManager,
		// Postgres or Redis, per quota.backend.
		quota.NewUsageRepository,
	)
}

func services() fx.Option {
	return fx.Provide(
		auth.NewJWTService,
		crypto.NewVault,
		vision.NewRegistry,
		quota.NewLedger,
		blob.NewImageStore,
		pubsub.NewEventPublisher,
	)
}

func usecases() fx.Option {
	return fx.Provide(
		impl.NewAnalysisService,
		impl.NewCredentialService,
		impl.NewProviderService,
	)
}

func httpLayer() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
		handler.NewAnalysisHandler,
		handler.NewCredentialHandler,
		handler.NewProviderHandler,
	)
}
