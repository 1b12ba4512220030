package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"brewlog/config"
	"brewlog/internal/domain/constants"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"

	"go.uber.org/fx"
)

// discardPublisher stands in when no transport is configured, so the
// orchestrator can publish unconditionally.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishAnalysisRecorded(_ context.Context, event *service.AnalysisRecordedEvent) error {
	p.logger.Debug("Analysis event discarded", slog.String("analysis_id", event.AnalysisID))

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the analysis-event transport named by pubsub.provider.
// Real transports are closed when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := openPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	if _, discarding := publisher.(*discardPublisher); !discarding {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				params.Logger.Info("Closing analysis event publisher")

				return publisher.Close()
			},
		})
	}

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Analysis events disabled")

		return &discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, domainerrors.ErrConfiguration.WrapMessage("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Analysis events pushed to local endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, domainerrors.ErrConfiguration.WrapMessage("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Analysis events published to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, domainerrors.ErrConfiguration.WrapMessage(fmt.Sprintf("unknown pubsub provider %q", cfg.Provider))
	}
}
