// Package errors extends the standard errors package with wrapping,
// multi-errors and human-readable formatting used by the CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

func New(msg string) error {
	return stdErrors.New(msg)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...) // nolint: forbidigo
}

func Is(err, target error) bool {
	return stdErrors.Is(err, target)
}

func As(err error, target any) bool {
	return stdErrors.As(err, target)
}

func Unwrap(err error) error {
	return stdErrors.Unwrap(err)
}

// Wrap returns an error with the new message, the original error is available via Unwrap.
func Wrap(err error, msg string) error {
	if err == nil {
		panic(New("wrapped error cannot be nil"))
	}
	return &wrappedError{msg: msg, cause: err}
}

func Wrapf(err error, format string, a ...any) error {
	return Wrap(err, fmt.Sprintf(format, a...))
}

type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}
