package bridge

import (
	"context"

	"github.com/kbukum/gobridge/future"
	"github.com/kbukum/gobridge/transport"
)

// deferredEngine expresses a call as a chain of continuations on the
// bridge's scheduler. URL, headers and body are resolved before the chain
// starts, so an encoding failure comes back as an already failed future.
//
// The transport call, status check and body read each run as their own
// continuation, strictly in that order. Once ctx is done no further step
// runs and a reply already received is closed.
type deferredEngine struct{}

func (deferredEngine) execute(ctx context.Context, r Request) *future.Future[*Response] {
	if err := r.claim(); err != nil {
		return future.Failed[*Response](err)
	}

	b := r.bridge
	pc, err := r.prepare()
	ctx, obs := b.observe(ctx, pc)
	if err != nil {
		obs.finish(ctx, nil, err)
		return future.Failed[*Response](err)
	}

	s := b.scheduler
	sent := future.Start(ctx, s, func(ctx context.Context) (*transport.Reply, error) {
		return b.roundTrip(ctx, pc)
	})
	checked := future.ThenRelease(ctx, s, sent, func(_ context.Context, reply *transport.Reply) (*transport.Reply, error) {
		return checkStatus(pc, reply)
	}, closeReply)
	resp := future.ThenRelease(ctx, s, checked, func(_ context.Context, reply *transport.Reply) (*Response, error) {
		return readBody(pc, reply)
	}, closeReply)

	resp.OnComplete(func(v *Response, err error) { obs.finish(ctx, v, err) })
	return resp
}
