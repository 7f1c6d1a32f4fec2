package bridge

import (
	"github.com/kbukum/gobridge/codec"
	"github.com/kbukum/gobridge/future"
	"github.com/kbukum/gobridge/logger"
	"github.com/kbukum/gobridge/observability"
	"github.com/kbukum/gobridge/transport"
)

// Option configures a Bridge.
type Option func(*Bridge)

// WithTransport sets the shared transport. Without it the bridge uses a
// net/http transport with default settings.
func WithTransport(t transport.Transport) Option {
	return func(b *Bridge) {
		if t != nil {
			b.transport = t
		}
	}
}

// WithCodec sets the body encoder. Defaults to codec.JSON.
func WithCodec(c codec.Codec) Option {
	return func(b *Bridge) {
		if c != nil {
			b.codec = c
		}
	}
}

// WithScheduler sets where deferred continuations run. Defaults to
// future.Goroutines.
func WithScheduler(s future.Scheduler) Option {
	return func(b *Bridge) {
		if s != nil {
			b.scheduler = s
		}
	}
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// WithMetrics records call metrics on m.
func WithMetrics(m *observability.CallMetrics) Option {
	return func(b *Bridge) {
		b.metrics = m
	}
}

// WithName sets the name used in logs. Defaults to "bridge".
func WithName(name string) Option {
	return func(b *Bridge) {
		if name != "" {
			b.name = name
		}
	}
}
