// Package globals holds flag sets shared across roster subcommands.
package globals

import "github.com/spf13/cobra"

// Flags are the root persistent flags every command inherits.
type Flags struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
	DryRun  bool
}

// Parse reads the persistent flags as seen from cmd. Flags the root does
// not define read as zero values.
func Parse(cmd *cobra.Command) *Flags {
	fs := cmd.Root().PersistentFlags()

	f := &Flags{}
	f.Format, _ = fs.GetString("format")
	f.Quiet, _ = fs.GetBool("quiet")
	f.Verbose, _ = fs.GetBool("verbose")
	f.NoColor, _ = fs.GetBool("no-color")
	f.DryRun, _ = fs.GetBool("dry-run")
	return f
}
