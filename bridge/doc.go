// Package bridge builds and executes outbound REST and GraphQL calls against
// a long-lived endpoint.
//
// A Bridge pairs a base URL with a shared transport. Each call starts from a
// descriptor, Rest or GraphQL, which carries a fresh correlation id. The
// descriptor is then refined through an immutable builder:
//
//	api := bridge.New(endpoint, bridge.WithTransport(t))
//	req := api.Request(bridge.Rest(nil, http.MethodGet)).
//		To("widgets").
//		WithQueryPair("id", "42").
//		WithCustomHeaders(bridge.BearerAuth(token))
//
// Every call sends Content-Type: application/json and x-request-id set to
// the correlation id, followed by the custom headers. A REST body is
// serialized as itself; a GraphQL body is {"query": ..., "variables": ...}
// with "variables" omitted when nil.
//
// # Execution modes
//
// Send comes in two forms selected at build time. By default it is
// non-blocking and returns a *future.Future[*Response] whose steps run on the
// bridge's scheduler:
//
//	resp, err := req.Send(ctx).Await(ctx)
//
// Built with -tags blocking, Send returns the result directly:
//
//	resp, err := req.Send(ctx)
//
// Both forms produce the same Response and the same errors. A non-2xx
// status fails with ErrCodeWrongStatus without reading the body. Nothing is
// retried.
package bridge
