package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/habitd/habitd/pkg/validator"
)

// JSONResponse is the standard JSON response structure. Data is always
// present so empty collections render as [] rather than disappearing
// from the envelope.
type JSONResponse struct {
	Data  any            `json:"data"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response with options
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{},
	}

	switch val := v.(type) {
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSONError creates a JSON error response from an error with options
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body:   JSONResponse{},
	}

	r.body.Error = errorToDetail(err, &r.status)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// errorToDetail converts an error to ErrorDetail and sets the matching status.
// Field validation failures become 400s with per-field details; HTTPError
// values carry their own status and key; anything else is a 500 with the
// error text as message.
func errorToDetail(err error, status *int) *ErrorDetail {
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		*status = http.StatusBadRequest

		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: "invalid input",
			Details: make(map[string][]string, len(ve.Fields())),
		}
		for _, field := range ve.Fields() {
			detail.Details[field] = ve.Get(field)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		message := httpErr.Message
		if message == "" {
			message = http.StatusText(httpErr.Code)
		}
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: message,
		}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{
		Code:    "internal_error",
		Message: err.Error(),
	}
}
