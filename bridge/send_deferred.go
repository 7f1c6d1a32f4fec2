//go:build !blocking

package bridge

import (
	"context"

	"github.com/kbukum/gobridge/future"
)

// Send starts the call and returns a future for its Response. The steps run
// on the bridge's scheduler (see WithScheduler); with a future.Queue nothing
// happens until the caller drives the queue.
//
// Cancelling ctx stops the chain: no later step runs and no Response is
// produced, though a request already on the wire is not guaranteed to be
// aborted. Failures are the same as in the blocking build.
func (r Request) Send(ctx context.Context) *future.Future[*Response] {
	return deferredEngine{}.execute(ctx, r)
}
