package errors

import (
	"fmt"

	"github.com/sasha-s/go-deadlock"
)

// MultiError collects errors, for example validation errors of several fields.
type MultiError interface {
	error
	Len() int
	Append(errs ...error)
	AppendNested(err error) MultiError
	AppendWithPrefixf(err error, format string, a ...any)
	WrappedErrors() []error
	Unwrap() []error
	ErrorOrNil() error
}

type multiError struct {
	lock   *deadlock.Mutex
	errors []error
}

func NewMultiError() MultiError {
	return &multiError{lock: &deadlock.Mutex{}}
}

func (e *multiError) Len() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.errors)
}

func (e *multiError) Append(errs ...error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	for _, err := range errs {
		if err == nil {
			continue
		}
		// Flatten
		if v, ok := err.(*multiError); ok { // nolint: errorlint
			e.errors = append(e.errors, v.WrappedErrors()...)
		} else {
			e.errors = append(e.errors, err)
		}
	}
}

// AppendNested appends the main error, following errors are added as its sub-errors.
func (e *multiError) AppendNested(err error) MultiError {
	nested := &nestedError{main: err, sub: NewMultiError()}
	e.Append(nested)
	return nested.sub
}

func (e *multiError) AppendWithPrefixf(err error, format string, a ...any) {
	e.Append(Wrap(err, fmt.Sprintf(format, a...)+": "+err.Error()))
}

func (e *multiError) WrappedErrors() []error {
	e.lock.Lock()
	defer e.lock.Unlock()
	out := make([]error, len(e.errors))
	copy(out, e.errors)
	return out
}

func (e *multiError) Unwrap() []error {
	return e.WrappedErrors()
}

func (e *multiError) Error() string {
	return Format(e)
}

func (e *multiError) ErrorOrNil() error {
	if e.Len() == 0 {
		return nil
	}
	return e
}

// nestedError is a main error followed by a list of sub-errors.
type nestedError struct {
	main error
	sub  MultiError
}

func (e *nestedError) Error() string {
	return Format(e)
}

func (e *nestedError) Unwrap() []error {
	return append([]error{e.main}, e.sub.WrappedErrors()...)
}

// PrefixError returns an error with the prefix as the main message and err as the sub-errors list.
func PrefixError(err error, prefix string) error {
	sub := NewMultiError()
	sub.Append(err)
	return &nestedError{main: New(prefix), sub: sub}
}

func PrefixErrorf(err error, format string, a ...any) error {
	return PrefixError(err, fmt.Sprintf(format, a...))
}

func NewNestedError(main error, subErrs ...error) error {
	if main == nil {
		panic(New("main error cannot be nil"))
	}
	sub := NewMultiError()
	sub.Append(subErrs...)
	return &nestedError{main: main, sub: sub}
}
