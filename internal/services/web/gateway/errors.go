package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoResponse reports that a request was sent but no response arrived.
var ErrNoResponse = errors.New("No response from server")

// ErrMalformedResponse reports a 2xx response that lacks an expected field.
var ErrMalformedResponse = errors.New("Invalid response from server")

// ValidationError is a local precondition failure raised before any request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ResponseError is a non-2xx backend response, kept untouched.
type ResponseError struct {
	StatusCode int
	Body       []byte
	// Message is the backend-provided message, empty when the body had none.
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// TransportError wraps the cause of a missing response. It matches
// ErrNoResponse under errors.Is and renders uniformly regardless of cause.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return ErrNoResponse.Error()
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *TransportError) Unwrap() []error {
	return []error{ErrNoResponse, e.Err}
}

// ServerMessage returns the backend-provided message carried by err, if any.
func ServerMessage(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return strings.TrimSpace(respErr.Message)
	}
	return ""
}

// MessageOr returns the backend message carried by err, or fallback.
func MessageOr(err error, fallback string) string {
	if msg := ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}

// StatusCode returns the HTTP status of a ResponseError, or 0.
func StatusCode(err error) int {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

// IsValidation reports whether err was raised by a local precondition.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func newResponseError(resp *http.Response, body []byte) *ResponseError {
	return &ResponseError{
		StatusCode: resp.StatusCode,
		Body:       body,
		Message:    extractMessage(body),
	}
}

func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(payload.Error)
}

// outcome labels a call result for metrics and span status.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var respErr *ResponseError
	switch {
	case errors.As(err, &respErr):
		return "rejected"
	case errors.Is(err, ErrNoResponse):
		return "no_response"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case IsValidation(err):
		return "invalid"
	default:
		return "error"
	}
}
