// Package ensure implements the ensure command.
package ensure

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/cmd/roster/cmd/cmdutil"
	"github.com/agentstation/roster/internal/appcontext"
	"github.com/agentstation/roster/internal/cmd/globals"
	"github.com/agentstation/roster/internal/cmd/output"
)

// NewCommand creates the ensure command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *globals.UserFlags

	cmd := &cobra.Command{
		Use:     "ensure <login>",
		GroupID: "users",
		Short:   "Create or update a user to match the given attributes",
		Long: `Ensure creates the user if the login is unknown, otherwise updates it.
On update the role set is replaced with the given roles (none if no --role
is given) and, when a password is supplied, the password is reset.`,
		Args: cobra.ExactArgs(1),
		Example: `  roster ensure deploy --email deploy@example.com --role 3
  roster ensure deploy -f deploy.yaml --password-stdin < pw.txt`,
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

			res := r.Ensure(ctx, desired)
			if err := render(cmd, app, res); err != nil {
				return err
			}

			if !res.OK || (res.PasswordReset != nil && !*res.PasswordReset) {
				return cmdutil.WriteFailed("ensure", login)
			}
			return nil
		},
	}

	flags = globals.AddUserFlags(cmd, globals.UserFlagSet{Password: true, File: true})

	return cmd
}

func render(cmd *cobra.Command, app appcontext.Interface, res roster.Result) error {
	return output.NewFormatter(cmdutil.Format(app)).Format(cmd.OutOrStdout(), res)
}
