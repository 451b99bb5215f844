package errors

import (
	"errors"
	"fmt"
)

// Meta keys shared across layers
const (
	MetaSource     = "source"
	MetaMonsterID  = "monster_id"
	MetaSuggestion = "suggestion"
	MetaValidation = "validation_errors"
)

// Error is a coded error with an optional cause and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithMeta sets one metadata entry and returns the error for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// WithSource records the file or transport the failing statblock came from
func (e *Error) WithSource(source string) *Error {
	if source == "" {
		return e
	}
	return e.WithMeta(MetaSource, source)
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code and metadata of a wrapped *Error carry
// over; anything else becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var inner *Error
	if errors.As(err, &inner) {
		return &Error{Code: inner.Code, Message: message, Cause: err, Meta: copyMeta(inner.Meta)}
	}

	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code, keeping any metadata
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: code, Message: message, Cause: err}
	var inner *Error
	if errors.As(err, &inner) {
		wrapped.Meta = copyMeta(inner.Meta)
	}
	return wrapped
}

func copyMeta(meta map[string]any) map[string]any {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// NotFound reports a missing monster, ability or session
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument reports rejected input: bad JSON, missing fields, bad flags
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists reports a duplicate monster id
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Unavailable reports an unreachable store or server
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Abortedf reports an optimistic write that kept losing its race
func Abortedf(format string, args ...any) *Error {
	return Newf(CodeAborted, format, args...)
}

// Canceledf reports work skipped because its context ended
func Canceledf(format string, args ...any) *Error {
	return Newf(CodeCanceled, format, args...)
}
