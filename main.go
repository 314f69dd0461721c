package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"clementus360/ai-helper-client/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCLI().RunContext(ctx, os.Args)
	stop()
	if err != nil {
		config.Logger.Error(err)
		os.Exit(1)
	}
}
