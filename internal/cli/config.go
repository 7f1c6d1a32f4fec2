package cli

import (
	"github.com/kbukum/gobridge/bridge"
	"github.com/kbukum/gobridge/config"
)

const serviceName = "gobridge"

// Config is the file and environment configuration of the CLI.
//
//	name: gobridge
//	logging:
//	  level: debug
//	bridge:
//	  endpoint: https://api.example.com/v1
//	  transport: resty
//	  timeout: 10s
//	telemetry:
//	  otlp_endpoint: localhost:4318
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Bridge    bridge.Config   `yaml:"bridge" mapstructure:"bridge"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// TelemetryConfig enables OTLP export of traces and metrics.
type TelemetryConfig struct {
	// OTLPEndpoint is the OTLP HTTP host:port. Empty disables export.
	OTLPEndpoint string  `yaml:"otlp_endpoint" mapstructure:"otlp_endpoint"`
	Insecure     bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate   float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// Enabled reports whether an exporter endpoint is configured.
func (c TelemetryConfig) Enabled() bool {
	return c.OTLPEndpoint != ""
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Bridge.ApplyDefaults()
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1
	}
}

// Validate checks the service and bridge sections.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return c.Bridge.Validate()
}

// loadConfig reads configuration for the CLI and applies flag overrides.
func loadConfig(g *globalOptions) (*Config, error) {
	var opts []config.LoaderOption
	if g.configFile != "" {
		opts = append(opts, config.WithConfigFile(g.configFile))
	}
	if g.environ != nil {
		opts = append(opts, config.WithEnviron(g.environ))
	}

	var cfg Config
	if err := config.Load(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}

	if g.endpoint != "" {
		cfg.Bridge.Endpoint = g.endpoint
	}
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if g.otlpEndpoint != "" {
		cfg.Telemetry.OTLPEndpoint = g.otlpEndpoint
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
