package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"brewlog/internal/domain/service"
	"brewlog/internal/errors"
)

const (
	analysisRecordedType = "analysis.recorded"

	// analysisRecordedSubscription is the subscription name the local publisher reports.
	analysisRecordedSubscription = "projects/local/subscriptions/analysis-recorded-sub"
)

// PushMessage mirrors the body Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeAnalysisRecorded returns the JSON payload and the attributes for an
// event. Attributes hold identifiers only so subscribers can filter without
// decoding; no bean details or user data go there.
func encodeAnalysisRecorded(event *service.AnalysisRecordedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode analysis event")
	}

	attributes := map[string]string{
		"event_type":  analysisRecordedType,
		"analysis_id": event.AnalysisID,
		"provider":    event.Provider,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}

// pushEnvelope wraps an event the way a push subscription would deliver it.
// The analysis ID doubles as the message ID so redeliveries are recognisable.
func pushEnvelope(event *service.AnalysisRecordedEvent, publishedAt time.Time) (*PushMessage, error) {
	data, attributes, err := encodeAnalysisRecorded(event)
	if err != nil {
		return nil, err
	}

	push := &PushMessage{Subscription: analysisRecordedSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = attributes
	push.Message.MessageID = event.AnalysisID
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return push, nil
}
