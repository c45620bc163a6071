// Package create implements the create command.
package create

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/roster/cmd/cmdutil"
	"github.com/agentstation/roster/internal/appcontext"
	"github.com/agentstation/roster/internal/cmd/globals"
)

// NewCommand creates the create command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *globals.UserFlags

	cmd := &cobra.Command{
		Use:     "create <login>",
		GroupID: "users",
		Short:   "Create a user",
		Long: `Create posts a new user. It does not check whether the login already
exists; use ensure for create-or-update.`,
		Args: cobra.ExactArgs(1),
		Example: `  roster create deploy --email deploy@example.com --role 3
  echo "$PW" | roster create deploy --password-stdin
  roster create deploy -f deploy.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			login := args[0]

			desired, err := flags.Desired(login, app.Stdin())
			if err != nil {
				return err
			}

			r, err := app.Reconciler()
			if err != nil {
				return err
			}

			ctx, cancel := cmdutil.Context(cmd, app)
			defer cancel()

			if !r.Create(ctx, desired.NewUser()) {
				return cmdutil.WriteFailed("create", login)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "user %s created\n", login)
			return err
		},
	}

	flags = globals.AddUserFlags(cmd, globals.UserFlagSet{Password: true, File: true})

	return cmd
}
