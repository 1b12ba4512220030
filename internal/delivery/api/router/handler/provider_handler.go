package handler

import (
	"net/http"

	"brewlog/internal/delivery/api/middleware"
	"brewlog/internal/delivery/api/response"
	"brewlog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProviderHandler serves the provider catalog
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(providerUC usecase.ProviderUsecase) *ProviderHandler {
	return &ProviderHandler{providerUC: providerUC}
}

// ListProviders lists every provider with the caller's credential status
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	providers, err := h.providerUC.ListProviders(c.Request().Context(), middleware.Caller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, providers)
}
