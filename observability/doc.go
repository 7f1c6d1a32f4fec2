// Package observability wires OpenTelemetry tracing and metrics for bridge
// calls.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("gobridge"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanBridgeSend)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("gobridge"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewCallMetrics(observability.Meter("gobridge"))
//	metrics.RecordCallEnd(ctx, "rest", "GET", "success", duration)
//
// Without an installed provider both tracer and meter are no-ops.
package observability
