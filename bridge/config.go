package bridge

import (
	"fmt"

	"github.com/kbukum/gobridge/codec"
	"github.com/kbukum/gobridge/transport"
	"github.com/kbukum/gobridge/validation"
)

const defaultName = "bridge"

// Config describes a bridge loaded from configuration.
type Config struct {
	// Name identifies the bridge in logs and health reports.
	Name string `yaml:"name" mapstructure:"name"`

	// Endpoint is the base URL every request is resolved against.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required,url"`

	// Transport selects the transport implementation: "http" or "resty".
	Transport string `yaml:"transport" mapstructure:"transport" validate:"oneof=http resty"`

	// Codec selects the body encoder: "json" or "jsoniter".
	Codec string `yaml:"codec" mapstructure:"codec" validate:"oneof=json jsoniter"`

	// HTTP holds timeout, HTTP/2 and TLS settings of the transport.
	HTTP transport.Config `yaml:",inline" mapstructure:",squash"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Transport == "" {
		c.Transport = transport.KindHTTP
	}
	if c.Codec == "" {
		c.Codec = codec.NameJSON
	}
	c.HTTP.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	return c.HTTP.Validate()
}
