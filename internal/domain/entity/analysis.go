package entity

import (
	"time"

	domainerrors "brewlog/internal/domain/errors"

	"github.com/google/uuid"
)

// BrewParameters is a suggested recipe for one brew method. Every field is optional.
type BrewParameters struct {
	GrindSize        string `json:"grind_size,omitempty"`
	WaterTemperature string `json:"water_temperature,omitempty"`
	Ratio            string `json:"ratio,omitempty"`
	BrewTime         string `json:"brew_time,omitempty"`
	Dose             string `json:"dose,omitempty"`
	Yield            string `json:"yield,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// AnalysisResult is the normalized outcome of one bag photo analysis.
// Identified=false is a valid outcome, not an error.
type AnalysisResult struct {
	Identified           bool                      `json:"identified"`
	Confidence           float64                   `json:"confidence"`
	BeanType             string                    `json:"bean_type,omitempty"`
	PossibleOrigin       string                    `json:"possible_origin,omitempty"`
	RoastLevel           string                    `json:"roast_level,omitempty"`
	RoastLevelConfidence float64                   `json:"roast_level_confidence"`
	Observations         []string                  `json:"observations"`
	SuggestedBrewMethods []string                  `json:"suggested_brew_methods"`
	BrewParameters       map[string]BrewParameters `json:"brew_parameters"`
	TastingNotesLikely   []string                  `json:"tasting_notes_likely"`
	Warnings             []string                  `json:"warnings"`
	AnalyzedAt           time.Time                 `json:"analyzed_at"`
}

// Outcome returns ErrNotIdentified when the model saw no recognizable coffee, nil otherwise.
func (r *AnalysisResult) Outcome() error {
	if r == nil || !r.Identified {
		return domainerrors.ErrNotIdentified
	}

	return nil
}

// AnalysisRecord is a persisted AnalysisResult owned by an authenticated user.
// Only CoffeeID may change after creation.
type AnalysisRecord struct {
	ID          uuid.UUID      `json:"id"`
	OwnerUserID uuid.UUID      `json:"owner_user_id"`
	ImageRef    string         `json:"image_ref"`
	Provider    ProviderID     `json:"provider"`
	CoffeeID    *uuid.UUID     `json:"coffee_id,omitempty"`
	Result      AnalysisResult `json:"result"`
	CreatedAt   time.Time      `json:"created_at"`
}
