// Package response writes the gateway's JSON envelopes. Every body carries
// either data or error, plus the request ID under meta.
package response

import (
	"net/http"
	"strconv"

	deliverycontext "brewlog/internal/delivery/context"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/errors"

	"github.com/labstack/echo/v4"
)

type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
	Meta  meta       `json:"meta"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type meta struct {
	RequestID string `json:"request_id"`
}

func write(c echo.Context, status int, body envelope) error {
	body.Meta.RequestID = deliverycontext.GetRequestID(c)

	return c.JSON(status, body)
}

func Success(c echo.Context, statusCode int, data any) error {
	return write(c, statusCode, envelope{Data: data})
}

// Error writes an error envelope. Details are withheld on server errors and
// on auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return write(c, statusCode, envelope{Error: &errorBody{Code: errorCode, Message: message, Details: details}})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError reports a body or path that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return BadRequest(c, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func TooManyRequests(c echo.Context, errorCode string, message string, retryAfterSeconds int) error {
	c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))

	return Error(c, http.StatusTooManyRequests, errorCode, message, nil)
}

// AppError writes the envelope for a domain error using its own status and code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError answers client-side domain errors directly. Server-side and
// unknown errors go back to echo so the error handler logs them once.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
