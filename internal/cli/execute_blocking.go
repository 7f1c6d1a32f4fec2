//go:build blocking

package cli

import (
	"context"

	"github.com/kbukum/gobridge/bridge"
)

const engineMode = "blocking"

func execute(ctx context.Context, req bridge.Request) (*bridge.Response, error) {
	return req.Send(ctx)
}
