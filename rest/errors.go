package rest

import (
	"errors"
	"fmt"
)

// Kind classifies REST client errors.
type Kind int

const (
	// KindNetwork indicates a transport failure before a response was received.
	KindNetwork Kind = iota
	// KindInvalidResponse indicates a missing or undecodable response body.
	KindInvalidResponse
	// KindInvalidProtocol indicates an HTTP redirect where none was expected.
	KindInvalidProtocol
	// KindAuth indicates an authentication failure (401).
	KindAuth
	// KindTwoFactorRequired indicates a 401 carrying a totp-required marker.
	KindTwoFactorRequired
	// KindAPI indicates any other non-2xx response with an error payload.
	KindAPI
)

// String returns the error kind name.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindInvalidResponse:
		return "invalid_response"
	case KindInvalidProtocol:
		return "invalid_protocol"
	case KindAuth:
		return "auth"
	case KindTwoFactorRequired:
		return "two_factor_required"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is a structured REST client error with classification. Callers
// branch on Kind (or the Is* helpers) instead of inspecting transport
// internals.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// StatusCode is the HTTP status code (0 for transport-level errors).
	StatusCode int
	// Code is the API error code (KindAPI only).
	Code string
	// Message describes the error.
	Message string
	// URL is the request URL, when known.
	URL string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindAPI:
		return fmt.Sprintf("rest: %s (HTTP %d) %s: %s", e.Kind, e.StatusCode, e.Code, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("rest: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("rest: %s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a transport-failure error carrying the
// underlying cause and the request URL.
func NewNetworkError(err error, url string) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: err.Error(),
		URL:     url,
		Err:     err,
	}
}

// NewInvalidResponseError creates an error for a missing or undecodable
// response body.
func NewInvalidResponseError(err error, url string) *Error {
	return &Error{
		Kind:    KindInvalidResponse,
		Message: err.Error(),
		URL:     url,
		Err:     err,
	}
}

// NewInvalidProtocolError creates an error for an unexpected redirect.
func NewInvalidProtocolError(statusCode int) *Error {
	return &Error{
		Kind:       KindInvalidProtocol,
		StatusCode: statusCode,
		Message:    "unexpected redirect",
	}
}

// NewAuthError creates an authentication error.
func NewAuthError(message string) *Error {
	return &Error{
		Kind:       KindAuth,
		StatusCode: 401,
		Message:    message,
	}
}

// NewTwoFactorRequiredError creates a two-factor-required error.
func NewTwoFactorRequiredError(message string) *Error {
	return &Error{
		Kind:       KindTwoFactorRequired,
		StatusCode: 401,
		Message:    message,
	}
}

// NewAPIError creates a generic API error with a server-supplied code.
func NewAPIError(statusCode int, code, message string) *Error {
	return &Error{
		Kind:       KindAPI,
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// IsNetwork checks if an error is a transport failure.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNetwork
}

// IsInvalidResponse checks if an error is an invalid-response error.
func IsInvalidResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalidResponse
}

// IsInvalidProtocol checks if an error is an unexpected redirect.
func IsInvalidProtocol(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalidProtocol
}

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindAuth
}

// IsTwoFactorRequired checks if an error is a two-factor-required error.
func IsTwoFactorRequired(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTwoFactorRequired
}

// IsAPI checks if an error is a generic API error.
func IsAPI(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindAPI
}
