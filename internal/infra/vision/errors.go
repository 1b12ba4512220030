package vision

import (
	"context"
	"net/http"
	"strings"

	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/errors"

	"github.com/tidwall/gjson"
)

// classifyFailure maps a non-2xx reply to the gateway error taxonomy.
// Provider error messages are matched but never copied into the returned error,
// since some backends echo part of the key back.
func classifyFailure(provider entity.ProviderID, statusCode int, body []byte) error {
	errorType := strings.ToLower(firstString(body, "error.type", "error.status", "error.code"))
	errorMsg := strings.ToLower(firstString(body, "error.message", "message"))

	switch {
	case statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden ||
		strings.Contains(errorType, "authentication") ||
		strings.Contains(errorType, "permission") ||
		strings.Contains(errorType, "invalid_api_key") ||
		strings.Contains(errorMsg, "api key not valid") ||
		strings.Contains(errorMsg, "invalid api key") ||
		strings.Contains(errorMsg, "incorrect api key"):
		return domainerrors.ErrInvalidCredential.WithDetails(provider.String())

	case statusCode == http.StatusTooManyRequests ||
		strings.Contains(errorType, "rate_limit") ||
		strings.Contains(errorType, "resource_exhausted") ||
		strings.Contains(errorType, "overloaded") ||
		strings.Contains(errorMsg, "rate limit"):
		return domainerrors.ErrRateLimited.WithDetails(provider.String())

	default:
		return errors.Wrapf(domainerrors.ErrUpstreamFailure.WithDetails(provider.String()), "%s returned status %d", provider, statusCode)
	}
}

// transportFailure wraps a request that never produced a reply. The transport error itself is
// dropped because it embeds the request URL. Cancellation stays visible through errors.Is.
func transportFailure(ctx context.Context, provider entity.ProviderID, err error) error {
	if errors.IsContextDone(err) || ctx.Err() != nil {
		cause := ctx.Err()
		if cause == nil {
			cause = context.DeadlineExceeded
		}

		return errors.Join(domainerrors.ErrUpstreamFailure.WithDetails(provider.String()), cause)
	}

	return errors.Wrapf(domainerrors.ErrUpstreamFailure.WithDetails(provider.String()), "%s request failed", provider)
}

func firstString(body []byte, paths ...string) string {
	if !gjson.ValidBytes(body) {
		return ""
	}

	for _, path := range paths {
		if v := gjson.GetBytes(body, path); v.Exists() && v.Type == gjson.String {
			return v.String()
		}
	}

	return ""
}
