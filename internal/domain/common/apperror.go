// internal/domain/common/apperror.go
package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so HTTP adapters can map it to a status code
// without inspecting collaborator-specific errors.
type Kind int

const (
	// KindValidation: malformed or missing input. Always client fault.
	KindValidation Kind = iota
	// KindAuth: missing or invalid credential.
	KindAuth
	// KindNotFound: referenced entity absent.
	KindNotFound
	// KindRateLimit: collaborator reported too many requests.
	KindRateLimit
	// KindProcessing: collaborator or transformation failure.
	KindProcessing
)

// AppError is the shared failure type for all usecases.
// Adapters remap tagged collaborator codes into one of the kinds above;
// anything unrecognized wraps as KindProcessing.
type AppError struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, may be nil
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HTTPStatus maps the error kind to a response status.
func (e *AppError) HTTPStatus() int {
	if e == nil {
		return http.StatusOK
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func Validation(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Auth(msg string) *AppError {
	return &AppError{Kind: KindAuth, Message: msg}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func RateLimit(msg string) *AppError {
	return &AppError{Kind: KindRateLimit, Message: msg}
}

// Processing wraps err (may be nil) with a message; the cause stays
// inspectable via errors.Unwrap.
func Processing(msg string, err error) *AppError {
	return &AppError{Kind: KindProcessing, Message: msg, Err: err}
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// StatusOf returns the HTTP status for any error (500 when untyped).
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if ae, ok := AsAppError(err); ok {
		return ae.HTTPStatus()
	}
	return http.StatusInternalServerError
}
