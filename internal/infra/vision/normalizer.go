package vision

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"time"

	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var (
	codeFencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	payloadValidator = validator.New(validator.WithRequiredStructEnabled())
)

// RawBrewParameters is a brew recipe as the model wrote it.
type RawBrewParameters struct {
	GrindSize        string `json:"grindSize"`
	WaterTemperature string `json:"waterTemperature"`
	Ratio            string `json:"ratio"`
	BrewTime         string `json:"brewTime"`
	Dose             string `json:"dose"`
	Yield            string `json:"yield"`
	Notes            string `json:"notes"`
}

// RawAnalysis is the JSON object the prompt asks every model for.
type RawAnalysis struct {
	Identified           *bool                        `json:"identified" validate:"required"`
	Confidence           float64                      `json:"confidence"`
	BeanType             string                       `json:"beanType" validate:"max=200"`
	PossibleOrigin       string                       `json:"possibleOrigin" validate:"max=200"`
	RoastLevel           string                       `json:"roastLevel" validate:"max=50"`
	RoastLevelConfidence float64                      `json:"roastLevelConfidence"`
	Observations         []string                     `json:"observations"`
	SuggestedBrewMethods []string                     `json:"suggestedBrewMethods"`
	BrewParameters       map[string]RawBrewParameters `json:"brewParameters"`
	TastingNotesLikely   []string                     `json:"tastingNotesLikely"`
	Warnings             []string                     `json:"warnings"`
}

// Parse decodes and validates the text a model returned. Failures are ErrMalformedResponse.
func Parse(rawText string) (*RawAnalysis, error) {
	payload := extractJSONObject(rawText)
	if payload == "" {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("no JSON object in model output")
	}

	var raw RawAnalysis
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("model output is not valid JSON")
	}

	if err := payloadValidator.Struct(&raw); err != nil {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("model output failed validation")
	}

	if *raw.Identified && strings.TrimSpace(raw.BeanType) == "" {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("identified result has no bean type")
	}

	return &raw, nil
}

// Transform converts a validated payload into the result shape. It never fails.
func Transform(raw *RawAnalysis, analyzedAt time.Time) *entity.AnalysisResult {
	result := &entity.AnalysisResult{
		Identified:           raw.Identified != nil && *raw.Identified,
		Confidence:           clampUnit(raw.Confidence),
		BeanType:             strings.TrimSpace(raw.BeanType),
		PossibleOrigin:       strings.TrimSpace(raw.PossibleOrigin),
		RoastLevel:           strings.ToLower(strings.TrimSpace(raw.RoastLevel)),
		RoastLevelConfidence: clampUnit(raw.RoastLevelConfidence),
		Observations:         nonNil(raw.Observations),
		SuggestedBrewMethods: nonNil(raw.SuggestedBrewMethods),
		BrewParameters:       make(map[string]entity.BrewParameters, len(raw.BrewParameters)),
		TastingNotesLikely:   nonNil(raw.TastingNotesLikely),
		Warnings:             nonNil(raw.Warnings),
		AnalyzedAt:           analyzedAt.UTC(),
	}

	for method, params := range raw.BrewParameters {
		result.BrewParameters[method] = entity.BrewParameters{
			GrindSize:        params.GrindSize,
			WaterTemperature: params.WaterTemperature,
			Ratio:            params.Ratio,
			BrewTime:         params.BrewTime,
			Dose:             params.Dose,
			Yield:            params.Yield,
			Notes:            params.Notes,
		}
	}

	return result
}

// normalize is the Parse then Transform step every client ends with.
func normalize(rawText string, now func() time.Time) (*entity.AnalysisResult, error) {
	raw, err := Parse(rawText)
	if err != nil {
		return nil, err
	}

	return Transform(raw, now()), nil
}

// extractJSONObject strips an optional markdown fence. The remainder must be a bare object.
func extractJSONObject(text string) string {
	text = strings.TrimSpace(text)
	if m := codeFencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return ""
	}

	return text
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return math.Min(math.Max(v, 0), 1)
}

func nonNil(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
