package rest

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func errorResponse(status int, body string) (*http.Response, *trackedBody) {
	tb := &trackedBody{Reader: strings.NewReader(body)}
	return &http.Response{StatusCode: status, Body: tb}, tb
}

func TestClassify_TwoFactorRequired(t *testing.T) {
	resp, body := errorResponse(401, `{"error":"totp-required","message":"m"}`)
	err := classify(resp)
	if err.Kind != KindTwoFactorRequired {
		t.Fatalf("expected two-factor error, got %v", err)
	}
	if err.Message != "m" {
		t.Errorf("expected message m, got %q", err.Message)
	}
	if !body.wasClosed() {
		t.Error("expected body to be closed")
	}
}

func TestClassify_AuthError(t *testing.T) {
	resp, _ := errorResponse(401, `{"message":"bad creds"}`)
	err := classify(resp)
	if err.Kind != KindAuth {
		t.Fatalf("expected auth error, got %v", err)
	}
	if err.Message != "bad creds" {
		t.Errorf("expected message bad creds, got %q", err.Message)
	}
}

func TestClassify_AuthError_DefaultMessage(t *testing.T) {
	resp, _ := errorResponse(401, `{}`)
	err := classify(resp)
	if err.Kind != KindAuth {
		t.Fatalf("expected auth error, got %v", err)
	}
	if err.Message != "Authentication problem" {
		t.Errorf("expected default message, got %q", err.Message)
	}
}

func TestClassify_APIError(t *testing.T) {
	resp, body := errorResponse(404, `{"errorType":"not-found","error":"no such room"}`)
	err := classify(resp)
	if err.Kind != KindAPI {
		t.Fatalf("expected api error, got %v", err)
	}
	if err.Code != "not-found" {
		t.Errorf("expected code not-found, got %q", err.Code)
	}
	if err.Message != "no such room" {
		t.Errorf("expected message 'no such room', got %q", err.Message)
	}
	if !body.wasClosed() {
		t.Error("expected body to be closed")
	}
}

func TestClassify_APIError_Defaults(t *testing.T) {
	resp, _ := errorResponse(500, `{}`)
	err := classify(resp)
	if err.Kind != KindAPI {
		t.Fatalf("expected api error, got %v", err)
	}
	if err.Code != "500" {
		t.Errorf("expected code 500, got %q", err.Code)
	}
	if err.Message != "unknown error" {
		t.Errorf("expected 'unknown error', got %q", err.Message)
	}
}

func TestClassify_Redirect_InvalidProtocol(t *testing.T) {
	resp, body := errorResponse(302, `{"errorType":"ignored"}`)
	err := classify(resp)
	if err.Kind != KindInvalidProtocol {
		t.Fatalf("expected invalid protocol error, got %v", err)
	}
	if err.StatusCode != 302 {
		t.Errorf("expected status 302, got %d", err.StatusCode)
	}
	if !body.wasClosed() {
		t.Error("expected body to be closed")
	}
}

func TestClassify_MalformedBody_FallsBackToAPIError(t *testing.T) {
	resp, body := errorResponse(503, `<html>gateway</html>`)
	err := classify(resp)
	if err.Kind != KindAPI {
		t.Fatalf("expected api error, got %v", err)
	}
	if err.Code != "503" {
		t.Errorf("expected code 503, got %q", err.Code)
	}
	if err.Message == "" {
		t.Error("expected fallback message from the parse failure")
	}
	if !body.wasClosed() {
		t.Error("expected body to be closed")
	}
}

// failingBody errors on the first read.
type failingBody struct {
	closed bool
}

func (b *failingBody) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func (b *failingBody) Close() error {
	b.closed = true
	return nil
}

func TestClassify_BodyReadError_FallsBackToAPIError(t *testing.T) {
	body := &failingBody{}
	resp := &http.Response{StatusCode: 500, Body: body}
	err := classify(resp)
	if err.Kind != KindAPI {
		t.Fatalf("expected api error, got %v", err)
	}
	if err.Code != "500" {
		t.Errorf("expected code 500, got %q", err.Code)
	}
	if !strings.Contains(err.Message, "connection reset") {
		t.Errorf("expected the read failure message, got %q", err.Message)
	}
	if !body.closed {
		t.Error("expected body to be closed")
	}
}

func TestClassify_MissingBody(t *testing.T) {
	resp := &http.Response{StatusCode: 400, Body: io.NopCloser(strings.NewReader(""))}
	err := classify(resp)
	if err.Kind != KindAPI {
		t.Fatalf("expected api error, got %v", err)
	}
	if err.Code != "400" {
		t.Errorf("expected code 400, got %q", err.Code)
	}
}
