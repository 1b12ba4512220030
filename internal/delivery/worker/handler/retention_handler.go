package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"brewlog/config"
	deliverycontext "brewlog/internal/delivery/context"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/errors"
	"brewlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks an OIDC token for an audience and returns its issuer.
type tokenValidator func(req *http.Request, token, audience string) (string, error)

// RetentionResult is returned to the scheduler that triggered the sweep
type RetentionResult struct {
	Removed int64 `json:"removed"`
}

// RetentionHandler runs the usage retention sweep on request of an external scheduler
type RetentionHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	retentionUC    usecase.RetentionUsecase
	logger         *slog.Logger
}

// RetentionHandlerParams holds dependencies for the RetentionHandler
type RetentionHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	RetentionUC usecase.RetentionUsecase
}

// NewRetentionHandler creates a new retention trigger handler
func NewRetentionHandler(params RetentionHandlerParams) *RetentionHandler {
	verifyPushAuth := params.Config.Worker != nil && params.Config.Worker.VerifyPushAuth

	return &RetentionHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       validateGoogleIDToken,
		retentionUC:    params.RetentionUC,
		logger:         params.Logger,
	}
}

// HandleUsageRetention purges expired usage counters.
// Storage failures answer 503 so the scheduler retries; configuration errors answer 200 to stop retries.
func (h *RetentionHandler) HandleUsageRetention(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.LoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyOIDCToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid scheduler token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	removed, err := h.retentionUC.PurgeExpiredUsage(ctx)
	if err != nil {
		retryable := !errors.Is(err, domainerrors.ErrConfiguration)
		logger.Error("[Worker] Usage retention failed",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.JSON(http.StatusOK, RetentionResult{Removed: removed})
}

// verifyOIDCToken verifies the Google-signed OIDC token sent by Cloud Scheduler or Pub/Sub push
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *RetentionHandler) verifyOIDCToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	issuer, err := h.validate(req, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if issuer != "accounts.google.com" && issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", issuer)
	}

	return nil
}

func validateGoogleIDToken(req *http.Request, token, audience string) (string, error) {
	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return "", err
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return "", errors.New("email not verified")
	}

	return payload.Issuer, nil
}
