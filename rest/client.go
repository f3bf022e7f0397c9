package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kbukum/chatclient/logger"
	"github.com/kbukum/chatclient/version"
)

// Client is a typed REST client for a chat server. Each call owns its own
// completion; the client shares only its immutable config and transport.
type Client struct {
	config    Config
	transport Transport
	tokens    TokenStore
	log       *logger.Logger
}

// Option configures the client.
type Option func(*Client)

// WithTransport replaces the default net/http transport.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithTokenStore sets the token store consulted on every request.
func WithTokenStore(s TokenStore) Option {
	return func(c *Client) {
		c.tokens = s
	}
}

// WithLogger sets the client logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a REST client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		tokens: NewMemoryTokenStore(),
		log:    logger.NewDefault("chatclient").WithComponent("rest"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = newHTTPTransport(cfg)
	}
	return c, nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close releases resources held by the default transport.
func (c *Client) Close() {
	if t, ok := c.transport.(*httpTransport); ok {
		t.Close()
	}
}

// buildRequest constructs an *http.Request from the client config and
// request, attaching auth headers when a token is stored for the server.
// A missing token is not an error; the request goes out unauthenticated.
func (c *Client) buildRequest(req Request) (*http.Request, string, error) {
	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("rest: encode body: %w", err)
	}

	httpReq, err := http.NewRequest(req.Method, req.URL, body)
	if err != nil {
		return nil, "", fmt.Errorf("rest: create request: %w", err)
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	userAgent := c.config.UserAgent
	if userAgent == "" {
		userAgent = "chatclient/" + version.GetShortVersion()
	}
	httpReq.Header.Set("User-Agent", userAgent)

	if tok, ok := c.tokens.Get(c.config.ServerURL); ok {
		httpReq.Header.Set("X-Auth-Token", tok.AuthToken)
		httpReq.Header.Set("X-User-Id", tok.UserID)
	}

	tag := req.Tag
	if tag == "" {
		tag = uuid.NewString()
	}
	return httpReq, tag, nil
}

// outcome carries a call's single resolution.
type outcome[T any] struct {
	value T
	err   error
}

// completion resolves at most once, regardless of how many times the
// transport invokes its callback.
type completion[T any] struct {
	resolved atomic.Bool
	ch       chan outcome[T]
}

func newCompletion[T any]() *completion[T] {
	return &completion[T]{ch: make(chan outcome[T], 1)}
}

func (c *completion[T]) resolve(value T, err error) {
	if !c.resolved.CompareAndSwap(false, true) {
		return
	}
	c.ch <- outcome[T]{value: value, err: err}
}

// abandon marks the completion resolved without producing an outcome, so
// late callbacks after cancellation are no-ops.
func (c *completion[T]) abandon() {
	c.resolved.Store(true)
}

// Call executes a request and decodes the JSON response into T. All
// classifiable failures come back as a *Error; cancellation of ctx aborts
// the in-flight call by tag and returns ctx.Err().
func Call[T any](ctx context.Context, c *Client, req Request, opts ...CallOption) (T, error) {
	var zero T

	options := defaultCallOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpReq, tag, err := c.buildRequest(req)
	if err != nil {
		return zero, err
	}
	url := httpReq.URL.String()

	c.log.Debug("submitting call", map[string]interface{}{
		logger.FieldMethod: httpReq.Method,
		logger.FieldURL:    url,
		logger.FieldTag:    tag,
	})

	done := newCompletion[T]()
	c.transport.Enqueue(httpReq, tag, options, func(resp *http.Response, err error) {
		if err != nil {
			done.resolve(zero, NewNetworkError(err, url))
			return
		}
		done.resolve(decodeResponse[T](resp, url))
	})

	select {
	case out := <-done.ch:
		if out.err != nil {
			var restErr *Error
			if errors.As(out.err, &restErr) {
				c.log.Debug("call failed", map[string]interface{}{
					logger.FieldURL:  url,
					logger.FieldKind: restErr.Kind.String(),
				})
			}
		}
		return out.value, out.err
	case <-ctx.Done():
		done.abandon()
		c.transport.Cancel(tag)
		return zero, ctx.Err()
	}
}

// decodeResponse turns an HTTP response into a decoded value or a typed
// error. The response body is closed exactly once on every path.
func decodeResponse[T any](resp *http.Response, url string) (T, error) {
	var zero T

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, classify(resp)
	}

	if resp.Body == nil || resp.Body == http.NoBody {
		return zero, NewInvalidResponseError(errors.New("missing body"), url)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, NewInvalidResponseError(err, url)
	}
	if len(body) == 0 {
		return zero, NewInvalidResponseError(errors.New("missing body"), url)
	}
	// A literal null body unmarshals without error but yields no value.
	if string(bytes.TrimSpace(body)) == "null" {
		return zero, NewInvalidResponseError(errors.New("response body yielded no value"), url)
	}

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return zero, NewInvalidResponseError(err, url)
		}
		// Anything else (e.g. *json.InvalidUnmarshalError) is a client
		// bug, not an API condition; surface it unwrapped.
		return zero, err
	}
	return value, nil
}
