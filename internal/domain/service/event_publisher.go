package service

import (
	"context"
)

// AnalysisRecordedEvent is published after an authenticated analysis has been persisted
type AnalysisRecordedEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	AnalysisID string `json:"analysis_id"`
	UserID     string `json:"user_id"`
	Provider   string `json:"provider"`
	Identified bool   `json:"identified"`
	BeanType   string `json:"bean_type,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnalysisRecorded publishes an analysis event for downstream consumers
	PublishAnalysisRecorded(ctx context.Context, event *AnalysisRecordedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
