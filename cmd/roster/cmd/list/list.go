// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/roster/cmd/cmdutil"
	"github.com/agentstation/roster/internal/appcontext"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/pkg/users"
)

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var remoteOnly, revokedOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "users",
		Short:   "List users in the directory",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  roster list                 # All users as a table
  roster list -o wide         # Include ids and last login
  roster list -o json         # Raw records
  roster list --remote        # Only externally managed users`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := app.Reconciler()
			if err != nil {
				return err
			}

			ctx, cancel := cmdutil.Context(cmd, app)
			defer cancel()

			all, err := r.ListUsers(ctx)
			if err != nil {
				return err
			}

			filtered := make([]users.User, 0, len(all))
			for _, u := range all {
				if remoteOnly && !u.Remote {
					continue
				}
				if revokedOnly && !u.IsRevoked {
					continue
				}
				filtered = append(filtered, u)
			}

			app.Logger().Debug().Int("total", len(all)).Int("shown", len(filtered)).Msg("Listed users")
			return output.FormatUsers(cmd.OutOrStdout(), filtered, cmdutil.Format(app))
		},
	}

	cmd.Flags().BoolVar(&remoteOnly, "remote", false, "Only show externally managed users")
	cmd.Flags().BoolVar(&revokedOnly, "revoked", false, "Only show revoked users")

	return cmd
}
