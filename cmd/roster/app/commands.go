package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/roster/cmd/create"
	"github.com/agentstation/roster/cmd/roster/cmd/ensure"
	"github.com/agentstation/roster/cmd/roster/cmd/get"
	"github.com/agentstation/roster/cmd/roster/cmd/list"
	"github.com/agentstation/roster/cmd/roster/cmd/man"
	"github.com/agentstation/roster/cmd/roster/cmd/update"
	"github.com/agentstation/roster/cmd/roster/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(get.NewCommand(a))
	rootCmd.AddCommand(create.NewCommand(a))
	rootCmd.AddCommand(update.NewCommand(a))
	rootCmd.AddCommand(ensure.NewCommand(a))

	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(man.NewCommand())
}
