// Command server runs the ariane HTTP API until it receives SIGINT or
// SIGTERM, then drains in-flight requests and exits.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/ariane-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
