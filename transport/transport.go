package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Kinds accepted by New.
const (
	KindHTTP  = "http"
	KindResty = "resty"
)

// Call is a fully composed outbound HTTP request.
type Call struct {
	// Method is the HTTP method (GET, POST, ...).
	Method string
	// URL is the final resolved URL including the query string.
	URL string
	// Header holds the request headers. Values of one name keep the order they were added in.
	Header http.Header
	// Body is the serialized payload. Empty means no payload.
	Body string
}

// Reply is the response to a Call. Body is left unread so the caller can
// inspect the status before deciding whether to consume it.
type Reply struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Body is the unread response body. The caller must close it.
	Body io.ReadCloser
}

// IsSuccess reports whether the status code is 2xx.
func (r *Reply) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport performs HTTP calls. Implementations must be safe for concurrent
// use and are expected to be created once and shared.
type Transport interface {
	// RoundTrip sends the call and returns the reply with an unread body.
	RoundTrip(ctx context.Context, call Call) (*Reply, error)
	// Close releases idle connections.
	Close() error
}

// Func adapts a plain function to the Transport interface.
type Func func(ctx context.Context, call Call) (*Reply, error)

// RoundTrip calls f.
func (f Func) RoundTrip(ctx context.Context, call Call) (*Reply, error) {
	return f(ctx, call)
}

// Close is a no-op.
func (f Func) Close() error { return nil }

// New creates a transport of the given kind. An empty kind selects net/http.
func New(kind string, cfg Config) (Transport, error) {
	switch kind {
	case "", KindHTTP:
		return NewHTTP(cfg)
	case KindResty:
		return NewResty(cfg)
	default:
		return nil, fmt.Errorf("transport: unknown kind %q", kind)
	}
}
