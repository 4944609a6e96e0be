// Command roadmap-sync keeps the generated roadmap regions of a repository in
// sync with the roadmap spreadsheet and project documents.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/roadmap-sync/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetRuntimeFactory(buildRuntime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, version)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
