package testutil

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/kbukum/gobridge/transport"
)

// StubReply scripts one transport outcome.
type StubReply struct {
	// StatusCode of the reply.
	StatusCode int
	// Body returned to the reader.
	Body string
	// Err fails the round trip itself.
	Err error
	// ReadErr fails reading the body after it was returned.
	ReadErr error
}

// Reply scripts a reply with the given status and body.
func Reply(status int, body string) StubReply {
	return StubReply{StatusCode: status, Body: body}
}

// Fail scripts a round trip failure.
func Fail(err error) StubReply {
	return StubReply{Err: err}
}

// StubTransport is a transport.Transport returning scripted replies in
// order. Once the script is exhausted the last reply repeats. It is safe for
// concurrent use.
type StubTransport struct {
	mu      sync.Mutex
	replies []StubReply
	next    int
	calls   []transport.Call
	bodies  []*StubBody
	closed  bool
}

var _ transport.Transport = (*StubTransport)(nil)

// NewStubTransport creates a stub answering with replies. With no replies
// it answers 200 with an empty body.
func NewStubTransport(replies ...StubReply) *StubTransport {
	if len(replies) == 0 {
		replies = []StubReply{Reply(200, "")}
	}
	return &StubTransport{replies: replies}
}

// RoundTrip records call and returns the next scripted reply.
func (s *StubTransport) RoundTrip(ctx context.Context, call transport.Call) (*transport.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	call.Header = call.Header.Clone()
	s.calls = append(s.calls, call)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := s.replies[min(s.next, len(s.replies)-1)]
	s.next++
	if r.Err != nil {
		return nil, r.Err
	}

	body := &StubBody{r: strings.NewReader(r.Body), readErr: r.ReadErr}
	s.bodies = append(s.bodies, body)
	return &transport.Reply{StatusCode: r.StatusCode, Body: body}, nil
}

// Close marks the stub closed.
func (s *StubTransport) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// Closed reports whether Close was called.
func (s *StubTransport) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Calls returns every recorded call in order.
func (s *StubTransport) Calls() []transport.Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]transport.Call(nil), s.calls...)
}

// LastCall returns the most recent call.
func (s *StubTransport) LastCall() (transport.Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return transport.Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// Bodies returns the reply bodies handed out so far.
func (s *StubTransport) Bodies() []*StubBody {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*StubBody(nil), s.bodies...)
}

// StubBody is a reply body that records how it was used.
type StubBody struct {
	mu      sync.Mutex
	r       io.Reader
	readErr error
	read    bool
	closed  bool
}

// Read implements io.Reader.
func (b *StubBody) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0, errors.New("testutil: read on closed body")
	}
	b.read = true
	if b.readErr != nil {
		return 0, b.readErr
	}
	return b.r.Read(p)
}

// Close implements io.Closer.
func (b *StubBody) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	return nil
}

// WasRead reports whether Read was called.
func (b *StubBody) WasRead() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read
}

// WasClosed reports whether Close was called.
func (b *StubBody) WasClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}
