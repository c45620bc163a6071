package roster

import (
	"github.com/rs/zerolog"
)

// config holds Reconciler settings.
type config struct {
	logger *zerolog.Logger
	dryRun bool
}

func defaultConfig() *config {
	return &config{}
}

// Option is a function that configures a Reconciler
type Option func(*config) error

// WithLogger sets the logger used for every operation, overriding any
// logger carried by the call context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithDryRun configures whether writes are skipped. In a dry run reads are
// still issued, the intended writes are logged, hooks do not fire and
// write operations report success.
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}
