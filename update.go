package roster

import (
	"context"
	"net/http"

	"github.com/agentstation/roster/pkg/differ"
	"github.com/agentstation/roster/pkg/directory"
	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/users"
)

// Update merges patch into the user with login and replaces the record.
// It never creates: an unknown login or an unreadable record returns
// false. The replace is sent even when nothing changed.
func (r *Reconciler) Update(ctx context.Context, login string, patch users.Patch) bool {
	ctx = r.scope(ctx, "update", login)
	return r.update(ctx, login, patch)
}

func (r *Reconciler) update(ctx context.Context, login string, patch users.Patch) bool {
	log := logging.FromContext(ctx)

	id, ok := r.findID(ctx, login)
	if !ok {
		log.Warn().Msg("User not found, nothing to update")
		return false
	}

	existing, ok := r.fetch(ctx, id)
	if !ok {
		log.Warn().Str("user_id", id).Msg("User record unavailable, nothing to update")
		return false
	}

	merged := patch.Apply(*existing, login)
	changes := differ.User(*existing, merged)

	event := log.Info().Str("user_id", existing.ID).Bool("remote", existing.Remote)
	if changes.HasChanges() {
		event = event.Object("changes", changes)
	}

	if r.config.dryRun {
		event.Bool("dry_run", true).Msg("Would update user")
		return true
	}

	if _, err := r.dir.Request(ctx, http.MethodPut, directory.UserPath(existing.ID), merged); err != nil {
		event.Discard()
		log.Warn().Err(err).Str("user_id", existing.ID).Msg("Updating user failed")
		return false
	}

	event.Msg("Updated user")
	r.hooks.userUpdated(*existing, merged)
	return true
}
