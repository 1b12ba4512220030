package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"brewlog/config"
	"brewlog/internal/delivery"
	"brewlog/internal/delivery/api/middleware"
	"brewlog/internal/delivery/api/router/handler"
	"brewlog/internal/delivery/api/validator"
	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"
	"brewlog/internal/errors"
	mockService "brewlog/internal/mocks/service"
	mockUsecase "brewlog/internal/mocks/usecase"
	"brewlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validToken   = "valid-token"
	refreshToken = "refresh-token"
	clientIP     = "203.0.113.10"
)

// routerFixtures holds the mocked usecases behind a fully wired echo instance.
type routerFixtures struct {
	echo         *echo.Echo
	analysisUC   *mockUsecase.MockAnalysisUsecase
	credentialUC *mockUsecase.MockCredentialUsecase
	providerUC   *mockUsecase.MockProviderUsecase
	tokenSvc     *mockService.MockTokenService
	userID       uuid.UUID
}

func createTestRouter(t *testing.T, rateLimit config.RateLimitConfig) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := routerFixtures{
		echo:         echo.New(),
		analysisUC:   mockUsecase.NewMockAnalysisUsecase(t),
		credentialUC: mockUsecase.NewMockCredentialUsecase(t),
		providerUC:   mockUsecase.NewMockProviderUsecase(t),
		tokenSvc:     mockService.NewMockTokenService(t),
		userID:       uuid.New(),
	}

	cfg := &config.Config{}
	cfg.HTTP.AnalyzeRateLimit = rateLimit

	fx.tokenSvc.EXPECT().ValidateToken(validToken).
		Return(&service.Claims{UserID: fx.userID, Type: service.TokenTypeAccess}, nil).Maybe()
	fx.tokenSvc.EXPECT().ValidateToken(refreshToken).
		Return(&service.Claims{UserID: fx.userID, Type: service.TokenTypeRefresh}, nil).Maybe()
	fx.tokenSvc.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("token is malformed")).Maybe()

	extractIP, err := delivery.ClientIPExtractor(cfg.HTTP.TrustedProxies)
	require.NoError(t, err)
	fx.echo.IPExtractor = extractIP
	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AnalysisHandler: handler.NewAnalysisHandler(handler.AnalysisHandlerParams{
			AnalysisUC: fx.analysisUC,
			Logger:     logger,
		}),
		CredentialHandler: handler.NewCredentialHandler(fx.credentialUC),
		ProviderHandler:   handler.NewProviderHandler(fx.providerUC),
		AuthMiddleware:    middleware.NewAuthMiddleware(fx.tokenSvc),
		RateLimiter:       middleware.NewRateLimiter(cfg, logger),
	})
	r.RegisterRoutes(fx.echo)

	return fx
}

func (fx routerFixtures) do(method, path, token string, body any) *httptest.ResponseRecorder {
	return fx.doForwarded(method, path, token, "", body)
}

// doForwarded sends from the fixed client socket address; forwardedFor, when
// set, is what the client claims in X-Forwarded-For and X-Real-IP.
func (fx routerFixtures) doForwarded(method, path, token, forwardedFor string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = clientIP + ":5555"
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if forwardedFor != "" {
		req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
		req.Header.Set(echo.HeaderXRealIP, forwardedFor)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{})

	rec := fx.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_Analyze_AnonymousCaller(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{})
	usage := entity.NewUsageSnapshot(1, 3, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))

	fx.analysisUC.EXPECT().
		Analyze(mock.Anything, mock.MatchedBy(func(in *usecase.AnalyzeInput) bool {
			return in.ImageRef == "bags/one" && in.Provider == "house-blend" &&
				!in.Caller.IsAuthenticated() && in.Caller.Address == clientIP
		})).
		Return(&usecase.AnalyzeOutput{
			Provider:      entity.ProviderHouseBlend,
			Result:        &entity.AnalysisResult{Identified: true, Confidence: 0.9, BeanType: "Arabica"},
			Usage:         &usage,
			UsageRecorded: true,
		}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/analyses", "", analyzeBody("bags/one", "house-blend"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"IDENTIFIED"`)
	assert.Contains(t, rec.Body.String(), `"remaining":2`)
	assert.Contains(t, rec.Body.String(), `"bean_type":"Arabica"`)
}

func TestRouter_Analyze_NotIdentifiedIsSuccess(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{})
	fx.analysisUC.EXPECT().Analyze(mock.Anything, mock.Anything).Return(&usecase.AnalyzeOutput{
		Provider: entity.ProviderGemini,
		Result:   &entity.AnalysisResult{Identified: false, Warnings: []string{"no bag in frame"}},
	}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/analyses", validToken, analyzeBody("bags/two", "gemini"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"NOT_IDENTIFIED"`)
}

func TestRouter_Analyze_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "unknown provider", err: domainerrors.ErrUnknownProvider.WithDetails("mystery"), wantStatus: http.StatusBadRequest, wantCode: "UNKNOWN_PROVIDER"},
		{name: "missing credential", err: domainerrors.ErrMissingCredential, wantStatus: http.StatusBadRequest, wantCode: "MISSING_CREDENTIAL"},
		{name: "quota exceeded", err: domainerrors.ErrQuotaExceeded, wantStatus: http.StatusTooManyRequests, wantCode: "QUOTA_EXCEEDED"},
		{name: "invalid credential", err: domainerrors.ErrInvalidCredential, wantStatus: http.StatusUnprocessableEntity, wantCode: "INVALID_CREDENTIAL"},
		{name: "upstream failure", err: errors.Wrap(domainerrors.ErrUpstreamFailure, "analysis abandoned"), wantStatus: http.StatusBadGateway, wantCode: "UPSTREAM_FAILURE"},
		{name: "unexpected error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t, config.RateLimitConfig{})
			fx.analysisUC.EXPECT().Analyze(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := fx.do(http.MethodPost, "/api/v1/analyses", "", analyzeBody("bags/one", "openai"))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestRouter_Analyze_ValidationFailure(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{})

	rec := fx.do(http.MethodPost, "/api/v1/analyses", "", map[string]string{"provider": "openai"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "image_ref failed required", body.Error.Details)
}

func TestRouter_Analyze_RateLimited(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.5, Burst: 1})
	fx.analysisUC.EXPECT().Analyze(mock.Anything, mock.Anything).Return(&usecase.AnalyzeOutput{
		Provider: entity.ProviderHouseBlend,
		Result:   &entity.AnalysisResult{Identified: true},
	}, nil).Once()

	first := fx.do(http.MethodPost, "/api/v1/analyses", "", analyzeBody("bags/one", "house-blend"))
	assert.Equal(t, http.StatusOK, first.Code)

	second := fx.do(http.MethodPost, "/api/v1/analyses", "", analyzeBody("bags/one", "house-blend"))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "2", second.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMITED", decodeError(t, second).Error.Code)
}

func TestRouter_Analyze_ForwardedForDoesNotResetRateLimit(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.5, Burst: 1})
	fx.analysisUC.EXPECT().
		Analyze(mock.Anything, mock.MatchedBy(func(in *usecase.AnalyzeInput) bool {
			return in.Caller.Address == clientIP
		})).
		Return(&usecase.AnalyzeOutput{
			Provider: entity.ProviderHouseBlend,
			Result:   &entity.AnalysisResult{Identified: true},
		}, nil).
		Once()

	first := fx.doForwarded(http.MethodPost, "/api/v1/analyses", "", "192.0.2.1", analyzeBody("bags/one", "house-blend"))
	require.Equal(t, http.StatusOK, first.Code)

	for _, forged := range []string{"192.0.2.2", "192.0.2.3", "198.51.100.99, 192.0.2.4"} {
		rec := fx.doForwarded(http.MethodPost, "/api/v1/analyses", "", forged, analyzeBody("bags/one", "house-blend"))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, forged)
	}
}

func TestRouter_CallerAddressIsSocketPeer(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{})
	fx.providerUC.EXPECT().ListProviders(mock.Anything, entity.AnonymousCaller(clientIP)).Return(nil, nil).Times(3)

	for _, forged := range []string{"10.9.9.9", "192.0.2.77", "203.0.113.200, 10.0.0.1"} {
		rec := fx.doForwarded(http.MethodGet, "/api/v1/providers", "", forged, nil)
		assert.Equal(t, http.StatusOK, rec.Code, forged)
	}
}

func TestRouter_OptionalAuth(t *testing.T) {
	t.Run("valid token identifies the user", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})
		usage := entity.NewUsageSnapshot(4, 10, time.Now())
		fx.analysisUC.EXPECT().
			GetUsage(mock.Anything, entity.AuthenticatedCaller(fx.userID, clientIP)).
			Return(&usage, nil)

		rec := fx.do(http.MethodGet, "/api/v1/usage", validToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"remaining":6`)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})

		rec := fx.do(http.MethodGet, "/api/v1/usage", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Error.Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})

		rec := fx.do(http.MethodGet, "/api/v1/providers", refreshToken, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_ListProviders(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{})
	fx.providerUC.EXPECT().ListProviders(mock.Anything, entity.AnonymousCaller(clientIP)).Return([]*usecase.ProviderSummary{
		{ProviderDescriptor: entity.ProviderDescriptor{ID: entity.ProviderHouseBlend, DisplayName: "House Blend"}},
		{ProviderDescriptor: entity.ProviderDescriptor{ID: entity.ProviderOpenAI, DisplayName: "OpenAI", RequiresUserCredential: true}},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/providers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"has_credential":false`)
	assert.Contains(t, rec.Body.String(), "house-blend")
}

func TestRouter_PrivateRoutesRequireToken(t *testing.T) {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/analyses"},
		{http.MethodPut, "/api/v1/analyses/" + uuid.NewString() + "/coffee"},
		{http.MethodGet, "/api/v1/credentials"},
		{http.MethodPut, "/api/v1/credentials/openai"},
		{http.MethodDelete, "/api/v1/credentials/openai"},
		{http.MethodPost, "/api/v1/credentials/openai/test"},
	}

	fx := createTestRouter(t, config.RateLimitConfig{})
	for _, p := range paths {
		rec := fx.do(p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
		assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Error.Code)
	}
}

func TestRouter_SaveCredential(t *testing.T) {
	const apiKey = "sk-proj-routerTestKey0123456789"

	t.Run("stores and returns the masked view", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})
		fx.credentialUC.EXPECT().SaveCredential(mock.Anything, fx.userID, "openai", apiKey).Return(&entity.CredentialView{
			Provider: entity.ProviderOpenAI,
			Masked:   "sk-p••••••••6789",
		}, nil)

		rec := fx.do(http.MethodPut, "/api/v1/credentials/openai", validToken, map[string]string{"api_key": apiKey})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "sk-p••••••••6789")
		assert.NotContains(t, rec.Body.String(), apiKey)
	})

	t.Run("malformed key never echoes the key", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})
		fx.credentialUC.EXPECT().SaveCredential(mock.Anything, fx.userID, "openai", apiKey).
			Return(nil, domainerrors.ErrInvalidCredential.WithDetails("key does not match the openai format"))

		rec := fx.do(http.MethodPut, "/api/v1/credentials/openai", validToken, map[string]string{"api_key": apiKey})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.NotContains(t, rec.Body.String(), apiKey)
	})

	t.Run("house blend refuses user keys", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})
		fx.credentialUC.EXPECT().SaveCredential(mock.Anything, fx.userID, "house-blend", apiKey).
			Return(nil, domainerrors.ErrCredentialNotAccepted)

		rec := fx.do(http.MethodPut, "/api/v1/credentials/house-blend", validToken, map[string]string{"api_key": apiKey})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "CREDENTIAL_NOT_ACCEPTED", decodeError(t, rec).Error.Code)
	})
}

func TestRouter_CredentialLifecycle(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{})
	fx.credentialUC.EXPECT().ListCredentials(mock.Anything, fx.userID).Return([]*entity.CredentialView{
		{Provider: entity.ProviderGemini, Masked: "AIza••••••••wxyz"},
	}, nil)
	fx.credentialUC.EXPECT().TestCredential(mock.Anything, fx.userID, "gemini").Return(true, nil)
	fx.credentialUC.EXPECT().DeleteCredential(mock.Anything, fx.userID, "gemini").Return(nil)
	fx.credentialUC.EXPECT().DeleteCredential(mock.Anything, fx.userID, "openai").Return(domainerrors.ErrCredentialNotFound)

	rec := fx.do(http.MethodGet, "/api/v1/credentials", validToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AIza••••••••wxyz")

	rec = fx.do(http.MethodPost, "/api/v1/credentials/gemini/test", validToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)

	rec = fx.do(http.MethodDelete, "/api/v1/credentials/gemini", validToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodDelete, "/api/v1/credentials/openai", validToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ListAnalyses(t *testing.T) {
	fx := createTestRouter(t, config.RateLimitConfig{})
	fx.analysisUC.EXPECT().ListAnalyses(mock.Anything, fx.userID, 5).Return([]*entity.AnalysisRecord{
		{ID: uuid.New(), OwnerUserID: fx.userID, Provider: entity.ProviderAnthropic},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/analyses?limit=5", validToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/analyses?limit=abc", validToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_LIMIT", decodeError(t, rec).Error.Code)
}

func TestRouter_LinkCoffee(t *testing.T) {
	analysisID := uuid.New()
	coffeeID := uuid.New()

	t.Run("links", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})
		fx.analysisUC.EXPECT().LinkCoffee(mock.Anything, fx.userID, analysisID, coffeeID).Return(nil)

		rec := fx.do(http.MethodPut, "/api/v1/analyses/"+analysisID.String()+"/coffee", validToken,
			map[string]string{"coffee_id": coffeeID.String()})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad analysis id", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})

		rec := fx.do(http.MethodPut, "/api/v1/analyses/not-a-uuid/coffee", validToken,
			map[string]string{"coffee_id": coffeeID.String()})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Error.Code)
	})

	t.Run("bad coffee id", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})

		rec := fx.do(http.MethodPut, "/api/v1/analyses/"+analysisID.String()+"/coffee", validToken,
			map[string]string{"coffee_id": "latte"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
	})

	t.Run("someone else's analysis", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})
		fx.analysisUC.EXPECT().LinkCoffee(mock.Anything, fx.userID, analysisID, coffeeID).Return(domainerrors.ErrAnalysisNotFound)

		rec := fx.do(http.MethodPut, "/api/v1/analyses/"+analysisID.String()+"/coffee", validToken,
			map[string]string{"coffee_id": coffeeID.String()})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_UploadImage(t *testing.T) {
	newUpload := func(field string, data []byte) *http.Request {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, _ := writer.CreateFormFile(field, "bag.jpg")
		_, _ = part.Write(data)
		_ = writer.Close()

		req := httptest.NewRequest(http.MethodPost, ImageUploadPath, &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

		return req
	}

	t.Run("stores the photo", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})
		photo := []byte("\xff\xd8\xff\xe0fake-jpeg")
		fx.analysisUC.EXPECT().UploadImage(mock.Anything, photo).Return("images/abc.jpg", nil)

		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, newUpload("image", photo))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"image_ref":"images/abc.jpg"`)
	})

	t.Run("missing field", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})

		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, newUpload("photo", []byte("x")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unsupported type", func(t *testing.T) {
		fx := createTestRouter(t, config.RateLimitConfig{})
		fx.analysisUC.EXPECT().UploadImage(mock.Anything, mock.Anything).
			Return("", domainerrors.ErrValidationFailed.WithDetails("unsupported image type text/plain"))

		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, newUpload("image", []byte(strings.Repeat("a", 64))))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unsupported image type")
	})
}

// analyzeBody builds an analyze request body.
func analyzeBody(imageRef, provider string) map[string]string {
	return map[string]string{"image_ref": imageRef, "provider": provider}
}
