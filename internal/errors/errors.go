// Package errors is the error import for every brewlog package; none import
// pkg/errors or the standard errors package directly. Wrapping goes through
// pkg/errors so stack traces survive to the logs, while matching stays on the
// standard library.
package errors

import (
	"context"
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join keeps every non-nil error matchable and drops nil entries.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap records a stack trace at the call site. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Errorf builds a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// IsContextDone reports whether err stems from a cancelled or expired context.
func IsContextDone(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
