package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/http2"
)

// HTTP is a Transport backed by net/http.
type HTTP struct {
	client *http.Client
}

var _ Transport = (*HTTP)(nil)

// NewHTTP creates a net/http transport with the given configuration.
func NewHTTP(cfg Config) (*HTTP, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := http.DefaultTransport.(*http.Transport).Clone()

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		base.TLSClientConfig = tlsCfg
	}

	if cfg.HTTP2 {
		if err := http2.ConfigureTransport(base); err != nil {
			return nil, fmt.Errorf("transport: configure http2: %w", err)
		}
	}

	return &HTTP{
		client: &http.Client{
			Transport: base,
			Timeout:   cfg.Timeout,
		},
	}, nil
}

// NewDefaultHTTP creates a net/http transport with the default configuration.
func NewDefaultHTTP() *HTTP {
	return &HTTP{
		client: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   defaultTimeout,
		},
	}
}

// NewHTTPFromClient wraps an existing *http.Client.
func NewHTTPFromClient(c *http.Client) *HTTP {
	return &HTTP{client: c}
}

// RoundTrip implements Transport.
func (t *HTTP) RoundTrip(ctx context.Context, call Call) (*Reply, error) {
	var body io.Reader = http.NoBody
	if call.Body != "" {
		body = strings.NewReader(call.Body)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if call.Header != nil {
		req.Header = call.Header.Clone()
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	return &Reply{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}

// Close releases idle connections.
func (t *HTTP) Close() error {
	t.client.CloseIdleConnections()
	return nil
}

// Unwrap returns the underlying *http.Client.
func (t *HTTP) Unwrap() *http.Client {
	return t.client
}
