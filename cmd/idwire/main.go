// Package main is the idwire command: it writes and checks the wire manifest
// of the engine's identifier types and generates the Go boundary shim.
package main

import (
	"context"
	"os"
	"os/signal"

	"idwire/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Main(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
