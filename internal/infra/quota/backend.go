package quota

import (
	"log/slog"
	"strings"

	"brewlog/config"
	"brewlog/internal/domain/constants"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/repository"
	"brewlog/internal/infra/persistence/postgres"
	"brewlog/internal/infra/persistence/redis"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// BackendParams holds dependencies for choosing the counter store, injected by Fx.
type BackendParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewUsageRepository returns the counter store named by quota.backend.
func NewUsageRepository(params BackendParams) (repository.UsageRepository, error) {
	backend := strings.ToLower(strings.TrimSpace(params.Config.Quota.Backend))

	switch backend {
	case "", constants.QuotaBackendPostgres:
		return postgres.NewUsageRepository(params.DB), nil
	case constants.QuotaBackendRedis:
		client, err := redis.New(redis.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Quota counters kept in Redis")

		return redis.NewUsageRepository(client, params.Config), nil
	default:
		return nil, domainerrors.ErrConfiguration.WrapMessage("quota.backend must be postgres or redis")
	}
}
