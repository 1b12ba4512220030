package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrUpstreamFailure.WithDetails("openai")

	assert.True(t, stderrors.Is(err, ErrUpstreamFailure))
	assert.False(t, stderrors.Is(err, ErrRateLimited))
	assert.Equal(t, "openai", err.Details())
	assert.Empty(t, ErrUpstreamFailure.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrQuotaExceeded.WrapMessage("record usage")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPCode())
	assert.Equal(t, "QUOTA_EXCEEDED", appErr.ErrorCode())
	assert.True(t, stderrors.Is(err, ErrQuotaExceeded))
}

func TestGatewayErrorKinds_AreDistinct(t *testing.T) {
	kinds := []*BaseError{
		ErrConfiguration,
		ErrUnknownProvider,
		ErrMissingCredential,
		ErrQuotaExceeded,
		ErrInvalidCredential,
		ErrRateLimited,
		ErrMalformedResponse,
		ErrUpstreamFailure,
		ErrNotIdentified,
		ErrIntegrity,
	}

	seen := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		assert.False(t, seen[kind.ErrorCode()], "duplicate code %s", kind.ErrorCode())
		seen[kind.ErrorCode()] = true

		for _, other := range kinds {
			if other == kind {
				continue
			}
			assert.False(t, stderrors.Is(kind, other), "%s must not match %s", kind.ErrorCode(), other.ErrorCode())
		}
	}
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(stderrors.New("connection reset"), "failed to upsert credential")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to upsert credential", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create analysis")

	assert.ErrorIs(t, err, cause)
}
