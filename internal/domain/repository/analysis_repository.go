package repository

import (
	"context"

	"brewlog/internal/domain/entity"
	"brewlog/internal/errors"

	"github.com/google/uuid"
)

// ErrAnalysisNotFound is returned when an analysis record does not exist for its owner.
var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository defines the interface for persisted analysis records.
type AnalysisRepository interface {
	// CreateAnalysis persists a new record.
	CreateAnalysis(ctx context.Context, record *entity.AnalysisRecord) error

	// FindAnalysisByID retrieves a record owned by ownerID.
	FindAnalysisByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.AnalysisRecord, error)

	// ListAnalysesByOwner retrieves the newest records of an owner.
	ListAnalysesByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error)

	// LinkCoffee attaches a catalog coffee to a record owned by ownerID.
	LinkCoffee(ctx context.Context, ownerID, id, coffeeID uuid.UUID) error
}
