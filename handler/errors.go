package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError represents an HTTP error with a status code, a stable machine
// readable key, and an optional human-readable message. When Message is
// empty, responses fall back to the standard status text.
type HTTPError struct {
	Code    int    // HTTP status code
	Key     string // Stable error code (e.g. "not_found", "unauthorized")
	Message string // Human-readable detail for the response body
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Key
}

// WithMessage returns a copy of the error carrying a human-readable detail.
//
//	handler.ErrUnauthorized.WithMessage("incorrect email or password")
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// Errors used by the service. The Key doubles as the "code" field of the
// JSON error envelope.
var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict            = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// NewHTTPError creates a custom HTTP error with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
