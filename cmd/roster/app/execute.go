package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/internal/cmd/globals"
	"github.com/agentstation/roster/internal/cmd/output"
)

// Execute runs the roster CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "roster",
		Short:   "Reconcile users in an RBAC directory",
		Version: a.version,
		Long: `Roster converges users in an RBAC users directory to a desired state.

It looks users up by login, creates the ones that are missing and merges
updates into existing ones without touching fields you did not set.
Users owned by an external identity provider keep their login, email and
display name; only their roles and revocation can be changed.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "users",
		Title: "User Commands:",
	})

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.roster.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml, wide")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.Bool("dry-run", false, "log intended writes without sending them")
	flags.String("url", "", "RBAC API base URL (env ROSTER_URL)")
	flags.String("token", "", "RBAC API token (env ROSTER_TOKEN)")

	rootCmd.SetVersionTemplate("roster {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	flags := globals.Parse(cmd)
	if _, err := output.ParseFormat(flags.Format); err != nil {
		return err
	}

	a.config.UpdateFromFlags(
		flags.Verbose,
		flags.Quiet,
		flags.NoColor,
		flags.DryRun,
		flags.Format,
		mustGetString(cmd, "log-level"),
	)
	if cmd.Flags().Changed("url") {
		a.config.URL = mustGetString(cmd, "url")
	}
	if cmd.Flags().Changed("token") {
		a.config.Token = mustGetString(cmd, "token")
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
