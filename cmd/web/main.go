// Package main starts the browser-facing visadesk web service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/sanjayconsultancy/visadesk/internal/cmd/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := webcmd.Main(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
