// Package testutil provides test doubles for code built on gobridge.
//
// StubTransport scripts transport replies and records every call:
//
//	stub := testutil.NewStubTransport(testutil.Reply(200, `{"ok":true}`))
//	api := bridge.New(endpoint, bridge.WithTransport(stub))
//
// NewEchoServer starts a real HTTP server that answers every request with a
// JSON description of what it received:
//
//	srv := testutil.NewEchoServer(t)
//	endpoint, _ := url.Parse(srv.URL)
package testutil
