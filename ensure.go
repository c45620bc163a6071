package roster

import (
	"context"

	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/users"
)

// Action is what Ensure did.
type Action string

const (
	// ActionCreated means the user did not exist and was created.
	ActionCreated Action = "created"
	// ActionUpdated means an existing user was updated.
	ActionUpdated Action = "updated"
)

// Result describes the outcome of Ensure.
type Result struct {
	Login  string `json:"login" yaml:"login"`
	Action Action `json:"action" yaml:"action"`
	OK     bool   `json:"ok" yaml:"ok"`

	// PasswordReset is set when a password was supplied for an existing
	// user; it reports whether the reset succeeded.
	PasswordReset *bool `json:"password_reset,omitempty" yaml:"password_reset,omitempty"`
	DryRun        bool  `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// Ensure converges the directory to desired. An existing user is updated
// with the supplied email, display name and roles, and its password is
// reset if one was given. A missing user is created with the password in
// the create body. Running it twice yields the same end state.
func (r *Reconciler) Ensure(ctx context.Context, desired users.Desired) Result {
	ctx = r.scope(ctx, "ensure", desired.Login)
	log := logging.FromContext(ctx)
	res := Result{Login: desired.Login, DryRun: r.config.dryRun}

	if _, found := r.findID(ctx, desired.Login); !found {
		res.Action = ActionCreated
		res.OK = r.create(ctx, desired.NewUser())
		return res
	}

	res.Action = ActionUpdated
	res.OK = r.update(ctx, desired.Login, desired.Patch())

	if desired.Password != nil {
		reset := r.resetPassword(ctx, desired.Login, *desired.Password)
		res.PasswordReset = &reset
	}

	log.Debug().Str("action", string(res.Action)).Bool("ok", res.OK).Msg("Ensured user")
	return res
}

func (r *Reconciler) resetPassword(ctx context.Context, login, password string) bool {
	log := logging.FromContext(ctx)

	if r.config.dryRun {
		log.Info().Bool("dry_run", true).Msg("Would reset password")
		return true
	}

	if err := r.dir.ResetPassword(ctx, login, password); err != nil {
		log.Warn().Err(err).Msg("Resetting password failed")
		return false
	}
	log.Info().Msg("Reset password")
	return true
}
