package cli

import (
	"context"
	"errors"

	"github.com/kbukum/gobridge/observability"
	"github.com/kbukum/gobridge/version"
)

// initTelemetry installs OTLP trace and metric providers when an endpoint
// is configured. The returned function flushes and shuts them down.
func initTelemetry(ctx context.Context, cfg *Config) (func(context.Context) error, error) {
	if !cfg.Telemetry.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	tc := observability.DefaultTracerConfig(cfg.Name)
	tc.ServiceVersion = version.Short()
	tc.Environment = cfg.Environment
	tc.Endpoint = cfg.Telemetry.OTLPEndpoint
	tc.Insecure = cfg.Telemetry.Insecure
	tc.SampleRate = cfg.Telemetry.SampleRate
	tp, err := observability.InitTracer(ctx, tc)
	if err != nil {
		return nil, err
	}

	mc := observability.DefaultMeterConfig(cfg.Name)
	mc.ServiceVersion = tc.ServiceVersion
	mc.Environment = cfg.Environment
	mc.Endpoint = cfg.Telemetry.OTLPEndpoint
	mc.Insecure = cfg.Telemetry.Insecure
	mp, err := observability.InitMeter(ctx, mc)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
