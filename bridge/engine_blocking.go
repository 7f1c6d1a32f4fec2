package bridge

import "context"

// blockingEngine runs a call to completion on the calling goroutine.
type blockingEngine struct{}

func (blockingEngine) execute(ctx context.Context, r Request) (*Response, error) {
	if err := r.claim(); err != nil {
		return nil, err
	}

	pc, err := r.prepare()
	ctx, obs := r.bridge.observe(ctx, pc)
	if err != nil {
		obs.finish(ctx, nil, err)
		return nil, err
	}

	resp, err := run(ctx, r.bridge, pc)
	obs.finish(ctx, resp, err)
	return resp, err
}

func run(ctx context.Context, b *Bridge, pc *preparedCall) (*Response, error) {
	reply, err := b.roundTrip(ctx, pc)
	if err != nil {
		return nil, err
	}
	reply, err = checkStatus(pc, reply)
	if err != nil {
		return nil, err
	}
	return readBody(pc, reply)
}
