package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Transport executes HTTP requests asynchronously. For every enqueued
// request the callback is invoked with either a response or an error;
// Cancel aborts the in-flight call identified by its tag.
type Transport interface {
	Enqueue(req *http.Request, tag string, opts CallOptions, cb func(*http.Response, error))
	Cancel(tag string)
}

// httpTransport is the default Transport backed by net/http. One shared
// client serves regular calls; scoped clients are derived per call when
// options require overrides, so the shared client is never mutated.
type httpTransport struct {
	client           *http.Client
	largeFileTimeout time.Duration

	mu       sync.Mutex
	inflight map[string]context.CancelFunc
}

func newHTTPTransport(cfg Config) *httpTransport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &httpTransport{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		largeFileTimeout: cfg.LargeFileTimeout,
		inflight:         make(map[string]context.CancelFunc),
	}
}

// clientFor returns the client serving the given options. Overrides get a
// derived client sharing the underlying transport.
func (t *httpTransport) clientFor(opts CallOptions) *http.Client {
	if !opts.LargeFile && opts.AllowRedirects {
		return t.client
	}
	scoped := &http.Client{
		Transport: t.client.Transport,
		Timeout:   t.client.Timeout,
	}
	if opts.LargeFile {
		scoped.Timeout = t.largeFileTimeout
	}
	if !opts.AllowRedirects {
		scoped.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return scoped
}

// Enqueue runs the request in its own goroutine and registers it under
// tag so Cancel can abort it.
func (t *httpTransport) Enqueue(req *http.Request, tag string, opts CallOptions, cb func(*http.Response, error)) {
	ctx, cancel := context.WithCancel(req.Context())

	t.mu.Lock()
	t.inflight[tag] = cancel
	t.mu.Unlock()

	client := t.clientFor(opts)
	go func() {
		resp, err := client.Do(req.WithContext(ctx))

		t.mu.Lock()
		delete(t.inflight, tag)
		t.mu.Unlock()
		cancel()

		cb(resp, err)
	}()
}

// Cancel aborts the in-flight call registered under tag, if any.
func (t *httpTransport) Cancel(tag string) {
	t.mu.Lock()
	cancel, ok := t.inflight[tag]
	delete(t.inflight, tag)
	t.mu.Unlock()
	if ok {
		cancel()
	}
}

// Close releases idle connections held by the shared client.
func (t *httpTransport) Close() {
	t.client.CloseIdleConnections()
}
