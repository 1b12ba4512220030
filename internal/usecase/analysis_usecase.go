package usecase

import (
	"context"

	"brewlog/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyzeInput describes one analysis request
type AnalyzeInput struct {
	ImageRef string
	Provider string
	Caller   entity.Caller
}

// AnalyzeOutput is the outcome of a successful analysis.
// Usage is set only on the house-blend path.
type AnalyzeOutput struct {
	AnalysisID    *uuid.UUID             `json:"analysis_id,omitempty"`
	Provider      entity.ProviderID      `json:"provider"`
	Result        *entity.AnalysisResult `json:"result"`
	Usage         *entity.UsageSnapshot  `json:"usage,omitempty"`
	UsageRecorded bool                   `json:"usage_recorded"`
}

// AnalysisUsecase defines the interface for bag photo analysis use cases
type AnalysisUsecase interface {
	// Analyze runs one photo through the requested provider, metering house-blend calls
	Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error)

	// GetUsage reports today's house-blend usage of the caller
	GetUsage(ctx context.Context, caller entity.Caller) (*entity.UsageSnapshot, error)

	// UploadImage stores a bag photo and returns the reference to analyze it by
	UploadImage(ctx context.Context, data []byte) (string, error)

	// ListAnalyses retrieves the newest analyses of a user
	ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error)

	// LinkCoffee attaches a catalog coffee to an analysis owned by the user
	LinkCoffee(ctx context.Context, userID, analysisID, coffeeID uuid.UUID) error
}
