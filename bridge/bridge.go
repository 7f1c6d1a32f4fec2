package bridge

import (
	"fmt"
	"net/url"

	"github.com/kbukum/gobridge/codec"
	"github.com/kbukum/gobridge/future"
	"github.com/kbukum/gobridge/logger"
	"github.com/kbukum/gobridge/observability"
	"github.com/kbukum/gobridge/transport"
)

// Bridge is a long-lived handle pairing a base URL with a shared transport.
// It is immutable after New and safe for concurrent use; every Request built
// from it borrows it.
type Bridge struct {
	name      string
	endpoint  *url.URL
	transport transport.Transport
	codec     codec.Codec
	scheduler future.Scheduler
	log       *logger.Logger
	metrics   *observability.CallMetrics
}

// New creates a bridge for endpoint. The URL is copied.
func New(endpoint *url.URL, opts ...Option) *Bridge {
	u := *endpoint
	b := &Bridge{
		name:      defaultName,
		endpoint:  &u,
		codec:     codec.JSON,
		scheduler: future.Goroutines,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.transport == nil {
		b.transport = transport.NewDefaultHTTP()
	}
	if b.log == nil {
		b.log = logger.Global()
	}
	b.log = b.log.WithComponent(b.name)
	return b
}

// NewFromConfig validates cfg, builds the configured transport and codec,
// and creates a bridge. Options override what cfg selects.
func NewFromConfig(cfg Config, opts ...Option) (*Bridge, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("bridge: parse endpoint: %w", err)
	}

	t, err := transport.New(cfg.Transport, cfg.HTTP)
	if err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}

	c, err := codec.ByName(cfg.Codec)
	if err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("bridge: %w", err)
	}

	base := []Option{WithName(cfg.Name), WithTransport(t), WithCodec(c)}
	return New(endpoint, append(base, opts...)...), nil
}

// Request starts a builder for rt against this bridge.
func (b *Bridge) Request(rt RequestType) Request {
	return Request{bridge: b, requestType: rt, sent: newSentGuard()}
}

// Endpoint returns a copy of the base URL.
func (b *Bridge) Endpoint() *url.URL {
	u := *b.endpoint
	return &u
}

// Name returns the bridge name.
func (b *Bridge) Name() string {
	return b.name
}

// Close releases idle connections held by the transport.
func (b *Bridge) Close() error {
	return b.transport.Close()
}
