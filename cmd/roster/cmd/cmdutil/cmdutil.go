// Package cmdutil holds helpers shared by the roster subcommands.
package cmdutil

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/internal/appcontext"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

// Format returns the output format for app, detecting it from the terminal
// when none was chosen.
func Format(app appcontext.Interface) output.Format {
	return output.DetectFormat(app.OutputFormat())
}

// Context bounds a command with constants.CommandTimeout and attaches the
// app logger.
func Context(cmd *cobra.Command, app appcontext.Interface) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx := logging.WithLogger(parent, app.Logger())
	return context.WithTimeout(ctx, constants.CommandTimeout)
}

// WriteFailed is returned when the directory did not accept a write. The
// cause has already been logged by the reconciler.
func WriteFailed(operation, login string) error {
	return &errors.ResourceError{
		Operation: operation,
		Resource:  "user",
		ID:        login,
		Message:   "directory did not accept the request (see log for details)",
	}
}
