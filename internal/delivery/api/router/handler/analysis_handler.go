package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"brewlog/internal/delivery/api/middleware"
	"brewlog/internal/delivery/api/response"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MaxUploadBytes bounds a single bag photo upload
const MaxUploadBytes = 8 << 20

// AnalysisHandlerParams holds dependencies for AnalysisHandler, injected by Fx.
type AnalysisHandlerParams struct {
	fx.In

	AnalysisUC usecase.AnalysisUsecase
	Logger     *slog.Logger
}

// AnalysisHandler holds dependencies for analysis-related handlers
type AnalysisHandler struct {
	analysisUC usecase.AnalysisUsecase
	logger     *slog.Logger
}

// NewAnalysisHandler is the constructor for AnalysisHandler
func NewAnalysisHandler(params AnalysisHandlerParams) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: params.AnalysisUC,
		logger:     params.Logger,
	}
}

// AnalyzeRequest represents the request body for analyzing a bag photo
type AnalyzeRequest struct {
	ImageRef string `json:"image_ref" validate:"required,max=256"`
	Provider string `json:"provider" validate:"required,max=32"`
}

// LinkCoffeeRequest represents the request body for linking a catalog coffee
type LinkCoffeeRequest struct {
	CoffeeID string `json:"coffee_id" validate:"required,uuid"`
}

// AnalyzeResponse adds a machine-readable outcome to the analysis output
type AnalyzeResponse struct {
	*usecase.AnalyzeOutput
	Outcome string `json:"outcome"`
}

// Analyze handles a bag photo analysis
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.analysisUC.Analyze(c.Request().Context(), &usecase.AnalyzeInput{
		ImageRef: req.ImageRef,
		Provider: req.Provider,
		Caller:   middleware.Caller(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	outcome := "IDENTIFIED"
	if output.Result.Outcome() != nil {
		outcome = domainerrors.ErrNotIdentified.ErrorCode()
	}

	return response.Success(c, http.StatusOK, AnalyzeResponse{AnalyzeOutput: output, Outcome: outcome})
}

// UploadImage handles a multipart bag photo upload
func (h *AnalysisHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Form field image is required")
	}
	if fileHeader.Size > MaxUploadBytes {
		return response.BadRequest(c, "IMAGE_TOO_LARGE", "Image exceeds the upload limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image could not be read")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image could not be read")
	}
	if len(data) > MaxUploadBytes {
		return response.BadRequest(c, "IMAGE_TOO_LARGE", "Image exceeds the upload limit")
	}

	ref, err := h.analysisUC.UploadImage(c.Request().Context(), data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"image_ref": ref})
}

// GetUsage reports today's free analysis usage of the caller
func (h *AnalysisHandler) GetUsage(c echo.Context) error {
	usage, err := h.analysisUC.GetUsage(c.Request().Context(), middleware.Caller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usage)
}

// ListAnalyses handles retrieving the analysis history of the user
func (h *AnalysisHandler) ListAnalyses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
		}
		limit = parsed
	}

	records, err := h.analysisUC.ListAnalyses(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// LinkCoffee handles attaching a catalog coffee to an analysis
func (h *AnalysisHandler) LinkCoffee(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	analysisID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid analysis ID")
	}

	var req LinkCoffeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coffee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.analysisUC.LinkCoffee(c.Request().Context(), userID, analysisID, uuid.MustParse(req.CoffeeID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Coffee linked successfully"})
}
