package handler

import (
	"net/http"

	"brewlog/internal/delivery/api/middleware"
	"brewlog/internal/delivery/api/response"
	"brewlog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CredentialHandler holds dependencies for provider key handlers
type CredentialHandler struct {
	credentialUC usecase.CredentialUsecase
}

// NewCredentialHandler is the constructor for CredentialHandler
func NewCredentialHandler(credentialUC usecase.CredentialUsecase) *CredentialHandler {
	return &CredentialHandler{credentialUC: credentialUC}
}

// SaveCredentialRequest represents the request body for storing a provider key
type SaveCredentialRequest struct {
	APIKey string `json:"api_key" validate:"required,max=512"`
}

// TestCredentialResponse reports the outcome of a live key check
type TestCredentialResponse struct {
	Provider string `json:"provider"`
	OK       bool   `json:"ok"`
}

// ListCredentials handles listing the masked keys of the user
func (h *CredentialHandler) ListCredentials(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	views, err := h.credentialUC.ListCredentials(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// SaveCredential handles storing a provider key
func (h *CredentialHandler) SaveCredential(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveCredentialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credential input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.credentialUC.SaveCredential(c.Request().Context(), userID, c.Param("provider"), req.APIKey)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DeleteCredential handles removing a provider key
func (h *CredentialHandler) DeleteCredential(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.credentialUC.DeleteCredential(c.Request().Context(), userID, c.Param("provider")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Credential deleted successfully"})
}

// TestCredential handles a live check of a stored provider key
func (h *CredentialHandler) TestCredential(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider := c.Param("provider")
	ok, err := h.credentialUC.TestCredential(c.Request().Context(), userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TestCredentialResponse{Provider: provider, OK: ok})
}
