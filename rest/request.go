package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// Request describes an outbound REST call. It is built fresh per call and
// immutable once submitted.
type Request struct {
	// Method is the HTTP method (GET, POST, etc).
	Method string
	// URL is the absolute request URL, typically built with BuildURL.
	URL string
	// Headers are request-specific headers (merged over client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string, or any
	// value that will be JSON-encoded.
	Body any
	// Tag correlates the call for cancellation. Generated when empty.
	Tag string
}

// CallOptions select the transport configuration for a single call.
type CallOptions struct {
	// LargeFile extends read/write timeouts for large transfers.
	LargeFile bool
	// AllowRedirects controls automatic redirect following.
	AllowRedirects bool
}

// CallOption configures a single call.
type CallOption func(*CallOptions)

func defaultCallOptions() CallOptions {
	return CallOptions{AllowRedirects: true}
}

// WithLargeFile selects extended timeouts for large file transfers.
func WithLargeFile() CallOption {
	return func(o *CallOptions) {
		o.LargeFile = true
	}
}

// WithoutRedirects disables automatic redirect following; a redirect
// response then classifies as KindInvalidProtocol.
func WithoutRedirects() CallOption {
	return func(o *CallOptions) {
		o.AllowRedirects = false
	}
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
