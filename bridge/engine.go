package bridge

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gobridge/logger"
	"github.com/kbukum/gobridge/observability"
	"github.com/kbukum/gobridge/transport"
)

// preparedCall is a Request resolved into everything the transport needs.
type preparedCall struct {
	id   uuid.UUID
	kind Kind
	url  string
	call transport.Call
}

// prepare resolves the URL, assembles headers and serializes the body. The
// returned call carries the URL even when serialization fails.
func (r Request) prepare() (*preparedCall, error) {
	rt := r.requestType
	target := r.URL().String()

	header := make(http.Header, 2+len(r.headers))
	header.Set(HeaderContentType, contentTypeJSON)
	header.Set(HeaderRequestID, rt.ID().String())
	for _, h := range r.headers {
		header.Add(h.Name, h.Value)
	}

	pc := &preparedCall{
		id:   rt.ID(),
		kind: rt.Kind(),
		url:  target,
		call: transport.Call{
			Method: rt.Method(),
			URL:    target,
			Header: header,
		},
	}

	body, err := rt.BodyAsString(r.bridge.codec)
	if err != nil {
		var be *Error
		if !errors.As(err, &be) {
			err = NewEncodingError(err)
		}
		return pc, err
	}
	pc.call.Body = body
	return pc, nil
}

// roundTrip issues the call on the shared transport.
func (b *Bridge) roundTrip(ctx context.Context, pc *preparedCall) (*transport.Reply, error) {
	reply, err := b.transport.RoundTrip(ctx, pc.call)
	if err != nil {
		return nil, NewTransportError(pc.url, err)
	}
	return reply, nil
}

// checkStatus passes 2xx replies through. Any other reply is closed unread.
func checkStatus(pc *preparedCall, reply *transport.Reply) (*transport.Reply, error) {
	if reply.IsSuccess() {
		return reply, nil
	}
	closeReply(reply)
	return nil, NewWrongStatusError(pc.url, reply.StatusCode)
}

// readBody consumes the reply body and builds the Response.
func readBody(pc *preparedCall, reply *transport.Reply) (*Response, error) {
	defer closeReply(reply)

	var body []byte
	if reply.Body != nil {
		b, err := io.ReadAll(reply.Body)
		if err != nil {
			return nil, NewTransportError(pc.url, err)
		}
		body = b
	}

	return &Response{
		URL:        pc.url,
		StatusCode: reply.StatusCode,
		Body:       string(body),
		RequestID:  pc.id,
		Kind:       pc.kind,
	}, nil
}

func closeReply(reply *transport.Reply) {
	if reply != nil && reply.Body != nil {
		_ = reply.Body.Close()
	}
}

// observation tracks one call for logs, traces and metrics.
type observation struct {
	bridge *Bridge
	pc     *preparedCall
	span   trace.Span
	start  time.Time
	log    *logger.Logger
}

func (b *Bridge) observe(ctx context.Context, pc *preparedCall) (context.Context, *observation) {
	ctx, span := observability.StartSpan(ctx, observability.SpanBridgeSend, trace.WithAttributes(
		attribute.String(observability.AttrRequestID, pc.id.String()),
		attribute.String(observability.AttrKind, pc.kind.String()),
		attribute.String(observability.AttrMethod, pc.call.Method),
		attribute.String(observability.AttrURL, pc.url),
	))

	log := b.log.WithFields(logger.Fields(
		logger.FieldRequestID, pc.id.String(),
		logger.FieldKind, pc.kind.String(),
		logger.FieldMethod, pc.call.Method,
		logger.FieldURL, pc.url,
	))
	log.Debug("dispatching request")

	b.metrics.RecordCallStart(ctx)
	return ctx, &observation{bridge: b, pc: pc, span: span, start: time.Now(), log: log}
}

func (o *observation) finish(ctx context.Context, resp *Response, err error) {
	elapsed := time.Since(o.start)
	outcome := outcomeOf(err)

	o.bridge.metrics.RecordCallEnd(ctx, o.pc.kind.String(), o.pc.call.Method, outcome, elapsed)

	o.span.SetAttributes(attribute.String(observability.AttrOutcome, outcome))
	if code := StatusCodeOf(err); code != 0 {
		o.span.SetAttributes(attribute.Int(observability.AttrStatusCode, code))
	}
	if err != nil {
		observability.SetSpanError(o.span, err)
		o.log.WithError(err).Warn("request failed", logger.DurationFields(elapsed))
	} else {
		o.span.SetAttributes(attribute.Int(observability.AttrStatusCode, resp.StatusCode))
		o.log.Debug("request completed", logger.Fields(
			logger.FieldStatusCode, resp.StatusCode,
			logger.FieldDuration, elapsed.Milliseconds(),
		))
	}
	o.span.End()
}

// outcomeOf names the result of a call for metrics.
func outcomeOf(err error) string {
	var be *Error
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &be):
		return be.Code.String()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
