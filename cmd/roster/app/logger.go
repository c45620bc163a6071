package app

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/roster/pkg/logging"
)

// NewLogger builds the CLI logger from config. The level comes from, in
// order: --log-level (or log_level), -q, -v, then info. -q beats -v.
func NewLogger(config *Config) zerolog.Logger {
	level := resolveLogLevel(config, os.Stderr)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
}

func determineLogLevel(config *Config) string {
	return resolveLogLevel(config, io.Discard)
}

// resolveLogLevel picks the level and reports ignored settings on warn.
func resolveLogLevel(config *Config, warn io.Writer) string {
	switch {
	case config.LogLevel != "":
		if !validLogLevels[config.LogLevel] {
			_, _ = fmt.Fprintf(warn, "Warning: invalid log level %q, using \"info\"\n", config.LogLevel)
			return "info"
		}
		return config.LogLevel
	case config.Quiet:
		if config.Verbose {
			_, _ = fmt.Fprintln(warn, "Warning: both --verbose and --quiet specified, using --quiet")
		}
		return "warn"
	case config.Verbose:
		return "debug"
	default:
		return "info"
	}
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}
