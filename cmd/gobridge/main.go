package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/gobridge/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	os.Exit(cli.HandleError(os.Stderr, err))
}
