package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/gobridge/bridge"
	"github.com/kbukum/gobridge/component"
	"github.com/kbukum/gobridge/logger"
	"github.com/kbukum/gobridge/observability"
)

const shutdownTimeout = 5 * time.Second

// runCall loads configuration, starts the bridge, sends one request built
// from rt and the global flags, and prints the response.
func runCall(cmd *cobra.Command, g *globalOptions, rt bridge.RequestType) error {
	if err := g.validate(); err != nil {
		return err
	}
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	p, err := newPrinter(g.output, g.jq)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(cfg.Logging, cmd.ErrOrStderr(), cfg.Name)
	logger.SetGlobal(log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if serr := shutdown(sctx); serr != nil {
			log.Warn("telemetry shutdown failed", logger.ErrorFields(serr))
		}
	}()

	metrics, err := observability.NewCallMetrics(observability.Meter(serviceName))
	if err != nil {
		return err
	}

	bc := bridge.NewComponent(cfg.Bridge, bridge.WithLogger(log), bridge.WithMetrics(metrics))
	registry := component.NewRegistry()
	if err := registry.Register(bc); err != nil {
		return err
	}
	if err := registry.StartAll(ctx); err != nil {
		return err
	}
	for _, d := range registry.Descriptions() {
		log.Debug("component ready", logger.Fields(logger.FieldComponent, d.Name, "details", d.Details))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if serr := registry.StopAll(sctx); serr != nil {
			log.Warn("bridge shutdown failed", logger.ErrorFields(serr))
		}
	}()

	req := bc.Bridge().Request(rt).
		WithCustomHeaders(g.customHeaders()...).
		WithQueryPairs(g.queryPairs()...)
	if g.to != "" {
		req = req.To(g.to)
	}

	resp, err := execute(ctx, req)
	if err != nil {
		return err
	}
	log.Info("call completed", logger.Fields(
		logger.FieldRequestID, resp.RequestID.String(),
		logger.FieldURL, resp.URL,
		logger.FieldStatusCode, resp.StatusCode,
	))
	return p.Print(ctx, cmd.OutOrStdout(), resp.Body)
}
