//go:build blocking

package bridge

import "context"

// Send performs the call and blocks until it completes. ctx bounds the
// transport call; the bridge itself enforces no deadline.
//
// It fails with an *Error whose Code is ErrCodeEncoding, ErrCodeTransport or
// ErrCodeWrongStatus, or with ErrAlreadySent.
func (r Request) Send(ctx context.Context) (*Response, error) {
	return blockingEngine{}.execute(ctx, r)
}
