package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/cyclejson/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code != cli.ExitSuccess {
		return 130 // Standard shell convention for SIGINT
	}
	return code
}
