package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"brewlog/internal/domain/service"
	"brewlog/internal/errors"
)

const localPushTimeout = 10 * time.Second

// localHTTPPublisher imitates a Pub/Sub push subscription for development:
// every event is POSTed to one endpoint in the push envelope.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishAnalysisRecorded(ctx context.Context, event *service.AnalysisRecordedEvent) error {
	push, err := pushEnvelope(event, p.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build local push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "local push failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("local push endpoint answered %d", resp.StatusCode)
	}

	p.logger.Debug("Analysis event pushed locally", slog.String("analysis_id", event.AnalysisID))

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
