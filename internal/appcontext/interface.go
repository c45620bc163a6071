// Package appcontext defines what roster subcommands need from the
// application, so verb packages depend on an interface instead of
// cmd/roster/app.
package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/roster"
)

// Interface is implemented by app.App and, in tests, by Mock.
type Interface interface {
	// Reconciler is built on first use from the resolved configuration.
	Reconciler() (*roster.Reconciler, error)

	Logger() *zerolog.Logger

	// OutputFormat is the --format value; empty means detect.
	OutputFormat() string

	// Stdin is where --password-stdin reads from.
	Stdin() io.Reader

	// Build information for the version command.
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
