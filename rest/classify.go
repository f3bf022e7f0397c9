package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// authPayload is the error body shape of 401 responses.
type authPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorPayload is the generic error body shape of non-2xx responses.
type errorPayload struct {
	ErrorType string `json:"errorType"`
	Error     string `json:"error"`
}

const twoFactorMarker = "totp-required"

// classify maps a response known to be non-2xx (or a redirect when
// redirects were disallowed) to a typed error. The response body is
// closed regardless of which path is taken.
func classify(resp *http.Response) *Error {
	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return NewInvalidProtocolError(resp.StatusCode)
	}

	body := "missing body"
	if resp.Body != nil {
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return classifyFallback(resp.StatusCode, err)
		}
		if len(b) > 0 {
			body = string(b)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		var payload authPayload
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			return classifyFallback(resp.StatusCode, err)
		}
		if payload.Error == twoFactorMarker {
			return NewTwoFactorRequiredError(payload.Message)
		}
		message := payload.Message
		if message == "" {
			message = "Authentication problem"
		}
		return NewAuthError(message)
	}

	var payload errorPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return classifyFallback(resp.StatusCode, err)
	}
	code := payload.ErrorType
	if code == "" {
		code = strconv.Itoa(resp.StatusCode)
	}
	message := payload.Error
	if message == "" {
		message = "unknown error"
	}
	return NewAPIError(resp.StatusCode, code, message)
}

// classifyFallback handles bodies that failed to parse during
// classification: the numeric status becomes the error code and the
// parse failure becomes the message.
func classifyFallback(statusCode int, err error) *Error {
	return NewAPIError(statusCode, strconv.Itoa(statusCode), err.Error())
}
