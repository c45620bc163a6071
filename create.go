package roster

import (
	"context"
	"net/http"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/users"
)

// Create posts a new user. Role ids are always sent as a list and the
// password is left out of the body when nil. It reports whether the
// directory accepted the request.
func (r *Reconciler) Create(ctx context.Context, user users.NewUser) bool {
	ctx = r.scope(ctx, "create", user.Login)
	return r.create(ctx, user)
}

func (r *Reconciler) create(ctx context.Context, user users.NewUser) bool {
	log := logging.FromContext(ctx)
	user.RoleIDs = user.RoleIDs.Normalize()

	if r.config.dryRun {
		log.Info().
			Strs("role_ids", user.RoleIDs.Strings()).
			Bool("password", user.Password != nil).
			Bool("dry_run", true).
			Msg("Would create user")
		return true
	}

	if _, err := r.dir.Request(ctx, http.MethodPost, constants.UsersPath, user); err != nil {
		log.Warn().Err(err).Msg("Creating user failed")
		return false
	}

	log.Info().Strs("role_ids", user.RoleIDs.Strings()).Msg("Created user")
	r.hooks.userCreated(user)
	return true
}
