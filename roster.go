// Package roster converges users in an RBAC directory to a desired state.
//
// A Reconciler resolves users by login, creates the ones that are missing
// and merges updates into the ones that exist without overwriting fields
// the caller left out. Users owned by an external identity provider
// ("remote" users) keep their login, email and display name; only their
// roles and revocation may change.
//
// Example:
//
//	client := directory.NewHTTPClient("https://console:4433/rbac-api/v1", token)
//	r, err := roster.New(client)
//	if err != nil {
//		return err
//	}
//	res := r.Ensure(ctx, users.Desired{
//		Login:   "deploy",
//		Email:   "deploy@example.com",
//		RoleIDs: users.Roles("3"),
//	})
//
// Every call re-reads the directory; nothing is cached between calls.
// Lookup and write failures are logged and reported as absent or false.
package roster

import (
	"context"
	"fmt"

	"github.com/agentstation/roster/pkg/directory"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

// Reconciler creates, updates and ensures users through a directory.Client.
type Reconciler struct {
	dir    directory.Client
	config *config
	hooks  *hooks
}

// New creates a Reconciler backed by dir.
func New(dir directory.Client, opts ...Option) (*Reconciler, error) {
	if dir == nil {
		return nil, errors.NewValidationError("dir", nil, "directory client is required")
	}

	r := &Reconciler{
		dir:    dir,
		config: defaultConfig(),
		hooks:  newHooks(),
	}

	for _, opt := range opts {
		if err := opt(r.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	return r, nil
}

// DryRun reports whether writes are being skipped.
func (r *Reconciler) DryRun() bool {
	return r.config.dryRun
}

// OnUserCreated registers a callback for users created by Create or Ensure.
// The payload passed to fn never carries the password.
func (r *Reconciler) OnUserCreated(fn UserCreatedHook) {
	r.hooks.OnUserCreated(fn)
}

// OnUserUpdated registers a callback for users replaced by Update or Ensure.
func (r *Reconciler) OnUserUpdated(fn UserUpdatedHook) {
	r.hooks.OnUserUpdated(fn)
}

// scope returns ctx carrying the logger for one operation. A logger set
// with WithLogger takes precedence over the one already in ctx.
func (r *Reconciler) scope(ctx context.Context, operation, login string) context.Context {
	if r.config.logger != nil {
		ctx = logging.WithLogger(ctx, r.config.logger)
	}
	ctx = logging.WithOperation(ctx, operation)
	if login != "" {
		ctx = logging.WithLogin(ctx, login)
	}
	return ctx
}
