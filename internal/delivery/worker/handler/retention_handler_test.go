package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/errors"
	mockUsecase "brewlog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRetentionHandler(t *testing.T, verify bool) (*RetentionHandler, *mockUsecase.MockRetentionUsecase) {
	retentionUC := mockUsecase.NewMockRetentionUsecase(t)

	return &RetentionHandler{
		verifyPushAuth: verify,
		validate:       validateGoogleIDToken,
		retentionUC:    retentionUC,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, retentionUC
}

func serveRetention(h *RetentionHandler, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/tasks/usage-retention", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandleUsageRetention(c)

	return rec
}

func TestRetentionHandler_HandleUsageRetention(t *testing.T) {
	tests := []struct {
		name       string
		purgeErr   error
		removed    int64
		wantStatus int
		wantBody   string
	}{
		{name: "purged", removed: 7, wantStatus: http.StatusOK, wantBody: `{"removed":7}`},
		{name: "storage failure is retried", purgeErr: errors.New("connection reset"), wantStatus: http.StatusServiceUnavailable},
		{name: "configuration failure is not retried", purgeErr: domainerrors.ErrConfiguration, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, retentionUC := newTestRetentionHandler(t, false)
			retentionUC.EXPECT().PurgeExpiredUsage(mock.Anything).Return(tt.removed, tt.purgeErr)

			rec := serveRetention(h, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRetentionHandler_RejectsMissingToken(t *testing.T) {
	h, _ := newTestRetentionHandler(t, true)

	rec := serveRetention(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serveRetention(h, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRetentionHandler_VerifiesIssuer(t *testing.T) {
	tests := []struct {
		name       string
		issuer     string
		wantStatus int
	}{
		{name: "google issuer", issuer: "https://accounts.google.com", wantStatus: http.StatusOK},
		{name: "foreign issuer", issuer: "https://evil.example", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, retentionUC := newTestRetentionHandler(t, true)
			var audience string
			h.validate = func(_ *http.Request, token, aud string) (string, error) {
				require.Equal(t, "signed-token", token)
				audience = aud

				return tt.issuer, nil
			}
			if tt.wantStatus == http.StatusOK {
				retentionUC.EXPECT().PurgeExpiredUsage(mock.Anything).Return(int64(0), nil)
			}

			rec := serveRetention(h, "Bearer signed-token")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "http://example.com/tasks/usage-retention", audience)
		})
	}
}

func TestRetentionHandler_ValidatorError(t *testing.T) {
	h, _ := newTestRetentionHandler(t, true)
	h.validate = func(*http.Request, string, string) (string, error) {
		return "", context.DeadlineExceeded
	}

	rec := serveRetention(h, "Bearer signed-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
