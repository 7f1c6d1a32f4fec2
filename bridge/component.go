package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/gobridge/component"
)

// Component manages a Bridge built from Config. The bridge is created in
// Start and its transport released in Stop.
type Component struct {
	config Config
	opts   []Option

	mu     sync.RWMutex
	bridge *Bridge
}

var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent creates a component for cfg. Options are applied on Start.
func NewComponent(cfg Config, opts ...Option) *Component {
	cfg.ApplyDefaults()
	return &Component{config: cfg, opts: opts}
}

// Name returns the configured bridge name.
func (c *Component) Name() string {
	return c.config.Name
}

// Start builds the bridge.
func (c *Component) Start(_ context.Context) error {
	b, err := NewFromConfig(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.bridge = b
	c.mu.Unlock()
	return nil
}

// Stop closes the bridge.
func (c *Component) Stop(_ context.Context) error {
	c.mu.Lock()
	b := c.bridge
	c.bridge = nil
	c.mu.Unlock()
	if b == nil {
		return nil
	}
	return b.Close()
}

// Health reports healthy once the bridge is built.
func (c *Component) Health(_ context.Context) component.Health {
	if c.Bridge() == nil {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe returns the endpoint and transport in use.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    c.Name(),
		Type:    "bridge",
		Details: fmt.Sprintf("%s via %s (%s)", c.config.Endpoint, c.config.Transport, c.config.Codec),
	}
}

// Bridge returns the running bridge, or nil before Start.
func (c *Component) Bridge() *Bridge {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bridge
}
