package transport

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// Resty is a Transport backed by a resty client.
type Resty struct {
	client *resty.Client
}

var _ Transport = (*Resty)(nil)

// NewResty creates a resty transport with the given configuration.
// HTTP2 is left to resty's underlying net/http negotiation.
func NewResty(cfg Config) (*Resty, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := resty.New()
	c.SetTimeout(cfg.Timeout)

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		c.SetTLSClientConfig(tlsCfg)
	}

	return &Resty{client: c}, nil
}

// NewRestyFromClient wraps an existing resty client.
func NewRestyFromClient(c *resty.Client) *Resty {
	return &Resty{client: c}
}

// RoundTrip implements Transport. The body is not parsed by resty so it can
// be handed back unread.
func (t *Resty) RoundTrip(ctx context.Context, call Call) (*Reply, error) {
	req := t.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)

	if call.Header != nil {
		req.Header = call.Header.Clone()
	}
	if call.Body != "" {
		req.SetBody(call.Body)
	}

	resp, err := req.Execute(call.Method, call.URL)
	if err != nil {
		return nil, err
	}
	return &Reply{StatusCode: resp.StatusCode(), Body: resp.RawBody()}, nil
}

// Close releases idle connections.
func (t *Resty) Close() error {
	t.client.GetClient().CloseIdleConnections()
	return nil
}
