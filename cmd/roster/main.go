// Command roster reconciles users in an RBAC directory.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agentstation/roster/cmd/roster/app"
	"github.com/agentstation/roster/pkg/constants"
)

// Set by the release build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	execErr := application.Execute(ctx, os.Args[1:])

	// The signal context may already be done; shut down on a fresh one.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Logger().Error().Err(err).Msg("Shutdown failed")
	}

	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
		return 1
	}
	return 0
}
