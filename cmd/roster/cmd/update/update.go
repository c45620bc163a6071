// Package update implements the update command.
package update

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/roster/cmd/cmdutil"
	"github.com/agentstation/roster/internal/appcontext"
	"github.com/agentstation/roster/internal/cmd/globals"
)

// NewCommand creates the update command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *globals.UserFlags

	cmd := &cobra.Command{
		Use:     "update <login>",
		GroupID: "users",
		Short:   "Update an existing user",
		Long: `Update changes only the attributes given as flags. --role replaces the
whole role set. Remote users keep their email and display name. The user
must already exist; update never creates.`,
		Args: cobra.ExactArgs(1),
		Example: `  roster update deploy --email new@example.com
  roster update deploy --role 3 --role 5
  roster update deploy --revoked=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			login := args[0]

			r, err := app.Reconciler()
			if err != nil {
				return err
			}

			ctx, cancel := cmdutil.Context(cmd, app)
			defer cancel()

			if !r.Update(ctx, login, flags.Patch()) {
				return cmdutil.WriteFailed("update", login)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "user %s updated\n", login)
			return err
		},
	}

	flags = globals.AddUserFlags(cmd, globals.UserFlagSet{Revoked: true})

	return cmd
}
