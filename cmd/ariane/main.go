// Command ariane is the operator tool: migrations, offline checks and
// imports of guest timeline documents.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/ariane-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
