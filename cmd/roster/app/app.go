// Package app provides the application context and dependency management
// for the roster CLI. It centralizes configuration, logging and the
// lazily built Reconciler so commands only depend on appcontext.Interface.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/internal/transport"
	"github.com/agentstation/roster/pkg/directory"
	"github.com/agentstation/roster/pkg/errors"
)

// App represents the roster application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	stdin  io.Reader
	stdout io.Writer

	// Directory client, overridable for tests
	client directory.Client

	// Reconciler instance (lazy-initialized, singleton)
	mu         sync.RWMutex
	reconciler *roster.Reconciler
}

// Option configures an App.
type Option func(*App) error

// WithConfig replaces the loaded configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) error {
		a.config = cfg
		return nil
	}
}

// WithDirectoryClient makes the App use client instead of building an
// HTTP client from the configuration.
func WithDirectoryClient(client directory.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}

// WithIO sets the streams commands read from and write to.
func WithIO(stdin io.Reader, stdout io.Writer) Option {
	return func(a *App) error {
		a.stdin = stdin
		a.stdout = stdout
		return nil
	}
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}

	// Load configuration
	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	// Initialize logger
	logger := NewLogger(app.config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the output format chosen by flag or config.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Stdin returns the input stream for --password-stdin.
func (a *App) Stdin() io.Reader {
	return a.stdin
}

// Stdout returns the output stream for command results.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// Reconciler returns the reconciler, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Reconciler() (*roster.Reconciler, error) {
	a.mu.RLock()
	if a.reconciler != nil {
		r := a.reconciler
		a.mu.RUnlock()
		return r, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.reconciler != nil {
		return a.reconciler, nil
	}

	client, err := a.directoryClient()
	if err != nil {
		return nil, err
	}

	r, err := roster.New(client,
		roster.WithLogger(a.logger),
		roster.WithDryRun(a.config.DryRun),
	)
	if err != nil {
		return nil, errors.WrapResource("create", "reconciler", "", err)
	}

	a.reconciler = r
	return r, nil
}

// directoryClient builds the HTTP directory client from the configuration.
func (a *App) directoryClient() (directory.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	token, err := a.config.ResolveToken()
	if err != nil {
		return nil, err
	}
	if token == "" {
		a.logger.Warn().Msg("No API token configured; requests will be unauthenticated")
	}

	tlsConfig, err := transport.TLSConfig(a.config.CACert, a.config.InsecureSkipVerify)
	if err != nil {
		return nil, err
	}

	return directory.NewHTTPClient(a.config.URL, token,
		transport.WithTimeout(a.config.Timeout),
		transport.WithRateLimit(a.config.RateLimit, a.config.RateBurst),
		transport.WithTLSConfig(tlsConfig),
	), nil
}

// Shutdown releases application resources. The reconciler runs no
// background work.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutdown complete")
	return nil
}
