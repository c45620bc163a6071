// Package get implements the get command.
package get

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/roster/cmd/cmdutil"
	"github.com/agentstation/roster/internal/appcontext"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/pkg/errors"
)

// NewCommand creates the get command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "get <login>",
		GroupID: "users",
		Short:   "Show one user",
		Args:    cobra.ExactArgs(1),
		Example: `  roster get admin
  roster get admin -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			login := args[0]

			r, err := app.Reconciler()
			if err != nil {
				return err
			}

			ctx, cancel := cmdutil.Context(cmd, app)
			defer cancel()

			id, ok := r.FindID(ctx, login)
			if !ok {
				return errors.NewNotFoundError("user", login)
			}
			u, ok := r.Fetch(ctx, id)
			if !ok {
				return errors.NewNotFoundError("user", login)
			}

			return output.FormatUser(cmd.OutOrStdout(), *u, cmdutil.Format(app))
		},
	}
}
