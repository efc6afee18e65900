package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
