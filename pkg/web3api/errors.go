package web3api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// MissingParameterError is returned when a URL placeholder has no usable value.
type MissingParameterError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("required param %s not provided", e.Name)
}

// MissingRequiredFieldError is returned when a required body field is absent.
type MissingRequiredFieldError struct {
	Key string
}

// Error implements the error interface.
func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("param %s is required", e.Key)
}

// APIError is the single error shape for failed calls: transport failures and
// non-2xx responses alike.
type APIError struct {
	Message    string
	StatusCode int
	URL        string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport or response error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// ResponseError represents a non-2xx response from the API.
type ResponseError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Body       []byte `json:"-"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// ParseResponseError builds a ResponseError from a status code and body. A body
// without a JSON message field still yields an error carrying the status.
func ParseResponseError(statusCode int, data []byte) *ResponseError {
	errResp := &ResponseError{StatusCode: statusCode, Body: data}

	var payload struct {
		Message any `json:"message"`
	}

	if json.Unmarshal(data, &payload) == nil {
		switch msg := payload.Message.(type) {
		case string:
			errResp.Message = msg
		case nil:
		default:
			errResp.Message = fmt.Sprint(msg)
		}
	}

	return errResp
}

// Static errors for err113 compliance.
var (
	ErrUnknownEndpoint     = errors.New("unknown endpoint")
	ErrUnknownGroup        = errors.New("unknown endpoint group")
	ErrBodyNotObject       = errors.New("cannot set property on a non-object body")
	ErrConfigRequired      = errors.New("config is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrInvalidConfig       = errors.New("invalid config")
	ErrInvalidCatalogue    = errors.New("invalid endpoint catalogue")
	ErrMultipleSetBody     = errors.New("endpoint declares more than one set body param")
	ErrNoMorePages         = errors.New("no more pages")
	ErrPublisherRequired   = errors.New("publisher is required")
	ErrRateLimitNotAllowed = errors.New("requests per second must be positive")
)

// IsMissingParameter checks if the error is a missing URL parameter.
func IsMissingParameter(err error) bool {
	missing := &MissingParameterError{}

	return errors.As(err, &missing)
}

// IsMissingRequiredField checks if the error is a missing required body field.
func IsMissingRequiredField(err error) bool {
	missing := &MissingRequiredFieldError{}

	return errors.As(err, &missing)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode
	}

	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	code := StatusCode(err)

	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
