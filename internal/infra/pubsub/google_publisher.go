package pubsub

import (
	"context"
	"log/slog"
	"time"

	"brewlog/internal/domain/service"
	"brewlog/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// Analysis events are rare, so batches are flushed almost immediately.
const analysisBatchDelay = 20 * time.Millisecond

type googlePubSubPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist, rather
// than letting the first analysis discover it.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicName := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "analysis topic %s is not reachable", topicName)
	}

	topic := client.Publisher(topicID)
	topic.PublishSettings.DelayThreshold = analysisBatchDelay

	return &googlePubSubPublisher{client: client, topic: topic, logger: logger}, nil
}

// PublishAnalysisRecorded blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishAnalysisRecorded(ctx context.Context, event *service.AnalysisRecordedEvent) error {
	data, attributes, err := encodeAnalysisRecorded(event)
	if err != nil {
		return err
	}

	messageID, err := p.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "analysis %s not published", event.AnalysisID)
	}

	p.logger.Debug("Analysis event published",
		slog.String("analysis_id", event.AnalysisID),
		slog.String("message_id", messageID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
