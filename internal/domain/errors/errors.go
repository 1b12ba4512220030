// Package errors defines the gateway's client-visible failure kinds. Each
// kind carries its HTTP status, a stable machine code and a display message.
package errors

import (
	"net/http"

	"brewlog/internal/errors"
)

// AppError is what the HTTP layer renders. Details is optional context for
// 4xx responses and is never shown on 5xx.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a failure kind. Copies made with WithDetails match their
// sentinel under errors.Is because matching is by code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WrapMessage adds operator context and a stack trace. The client still
// sees only the kind's own message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func kind(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Gateway failure kinds.
var (
	ErrConfiguration = kind(http.StatusInternalServerError, "CONFIGURATION_ERROR", "服務設定錯誤")

	ErrUnknownProvider       = kind(http.StatusBadRequest, "UNKNOWN_PROVIDER", "不支援的分析供應商")
	ErrMissingCredential     = kind(http.StatusBadRequest, "MISSING_CREDENTIAL", "尚未設定此供應商的 API 金鑰")
	ErrCredentialNotAccepted = kind(http.StatusBadRequest, "CREDENTIAL_NOT_ACCEPTED", "此供應商不接受使用者自備的 API 金鑰")

	ErrQuotaExceeded = kind(http.StatusTooManyRequests, "QUOTA_EXCEEDED", "今日免費分析次數已用完")

	ErrInvalidCredential = kind(http.StatusUnprocessableEntity, "INVALID_CREDENTIAL", "供應商拒絕了此 API 金鑰")
	ErrRateLimited       = kind(http.StatusServiceUnavailable, "PROVIDER_RATE_LIMITED", "分析供應商暫時忙碌，請稍後再試")
	ErrMalformedResponse = kind(http.StatusBadGateway, "MALFORMED_RESPONSE", "分析供應商回傳了無法解析的結果")
	ErrUpstreamFailure   = kind(http.StatusBadGateway, "UPSTREAM_FAILURE", "分析供應商發生錯誤")

	// ErrNotIdentified is an outcome, not a failure: the photo held no recognizable coffee.
	ErrNotIdentified = kind(http.StatusOK, "NOT_IDENTIFIED", "無法從照片辨識咖啡豆")

	ErrIntegrity          = kind(http.StatusConflict, "CREDENTIAL_INTEGRITY", "已儲存的 API 金鑰無法解密，請重新設定")
	ErrCredentialNotFound = kind(http.StatusNotFound, "CREDENTIAL_NOT_FOUND", "找不到此供應商的 API 金鑰")
	ErrAnalysisNotFound   = kind(http.StatusNotFound, "ANALYSIS_NOT_FOUND", "找不到該分析紀錄")

	ErrValidationFailed = kind(http.StatusBadRequest, "VALIDATION_FAILED", "輸入資料驗證失敗")
	ErrNotFound         = kind(http.StatusNotFound, "NOT_FOUND", "找不到該資源")
	ErrInternalError    = kind(http.StatusInternalServerError, "INTERNAL_ERROR", "系統內部錯誤")
)

// DatabaseExecuteError reports a failed write. The driver error stays
// reachable through Unwrap for logging and constraint checks.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "資料庫執行失敗" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
