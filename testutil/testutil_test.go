package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/kbukum/gobridge/component"
	"github.com/kbukum/gobridge/transport"
)

func TestStubTransport_Script(t *testing.T) {
	boom := errors.New("refused")
	stub := NewStubTransport(Reply(201, "first"), Fail(boom), Reply(404, "last"))
	ctx := context.Background()

	r, err := stub.RoundTrip(ctx, transport.Call{Method: "POST", URL: "http://x/a", Body: "{}"})
	if err != nil || r.StatusCode != 201 {
		t.Fatalf("first reply: %v %v", r, err)
	}
	b, _ := io.ReadAll(r.Body)
	if string(b) != "first" {
		t.Errorf("unexpected body %q", b)
	}

	if _, err := stub.RoundTrip(ctx, transport.Call{}); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}

	for range 2 {
		r, err := stub.RoundTrip(ctx, transport.Call{})
		if err != nil || r.StatusCode != 404 {
			t.Fatalf("expected repeating 404, got %v %v", r, err)
		}
	}

	calls := stub.Calls()
	if len(calls) != 4 || calls[0].Body != "{}" {
		t.Errorf("unexpected calls %+v", calls)
	}
	last, ok := stub.LastCall()
	if !ok || last.Method != "" {
		t.Errorf("unexpected last call %+v", last)
	}
}

func TestStubTransport_BodyTracking(t *testing.T) {
	readErr := errors.New("reset")
	stub := NewStubTransport(StubReply{StatusCode: 200, Body: "x", ReadErr: readErr})

	r, err := stub.RoundTrip(context.Background(), transport.Call{})
	if err != nil {
		t.Fatal(err)
	}
	body := stub.Bodies()[0]
	if body.WasRead() || body.WasClosed() {
		t.Fatal("fresh body must be untouched")
	}
	if _, err := io.ReadAll(r.Body); !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	_ = r.Body.Close()
	if !body.WasRead() || !body.WasClosed() {
		t.Error("expected body to be read and closed")
	}
}

func TestStubTransport_CancelledContext(t *testing.T) {
	stub := NewStubTransport()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := stub.RoundTrip(ctx, transport.Call{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := stub.Close(); err != nil || !stub.Closed() {
		t.Fatal("expected stub to be closed")
	}
}

func TestEchoServer(t *testing.T) {
	srv := NewEchoServer(t)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/v1/widgets?id=42&id=43", strings.NewReader(`{"a":1}`))
	req.Header.Set("x-request-id", "abc")
	req.Header.Set(EchoStatusHeader, "202")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("expected 202, got %d", resp.StatusCode)
	}
	var echo Echo
	if err := json.NewDecoder(resp.Body).Decode(&echo); err != nil {
		t.Fatal(err)
	}
	if echo.Method != http.MethodPut || echo.Path != "/v1/widgets" || echo.RawQuery != "id=42&id=43" {
		t.Errorf("unexpected echo %+v", echo)
	}
	if len(echo.Query["id"]) != 2 || echo.Body != `{"a":1}` {
		t.Errorf("unexpected echo %+v", echo)
	}
	if got := http.Header(echo.Header).Get("X-Request-Id"); got != "abc" {
		t.Errorf("expected request id header, got %q", got)
	}
}

type fakeComponent struct {
	started, stopped bool
}

func (f *fakeComponent) Name() string                { return "fake" }
func (f *fakeComponent) Start(context.Context) error { f.started = true; return nil }
func (f *fakeComponent) Stop(context.Context) error  { f.stopped = true; return nil }
func (f *fakeComponent) Health(context.Context) component.Health {
	return component.Health{Name: "fake", Status: component.StatusHealthy}
}

func TestStartComponent(t *testing.T) {
	c := &fakeComponent{}
	t.Run("inner", func(t *testing.T) {
		StartComponent(t, c)
		if !c.started {
			t.Fatal("expected component to be started")
		}
	})
	if !c.stopped {
		t.Fatal("expected component to be stopped after the subtest")
	}
}
