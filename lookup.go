package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/directory"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/users"
)

// ListUsers returns every user in listing order. It is the only operation
// that reports failures as errors.
func (r *Reconciler) ListUsers(ctx context.Context) ([]users.User, error) {
	raw, err := r.dir.Request(ctx, http.MethodGet, constants.UsersPath, nil)
	if err != nil {
		return nil, errors.WrapResource("list", "users", "", err)
	}
	if isEmpty(raw) {
		return []users.User{}, nil
	}

	var all []users.User
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, errors.WrapParse("json", constants.UsersPath, err)
	}
	return all, nil
}

// FindID returns the id of the first user whose login equals login. A
// failed listing is logged and reported as not found.
func (r *Reconciler) FindID(ctx context.Context, login string) (string, bool) {
	ctx = r.scope(ctx, "find", login)
	return r.findID(ctx, login)
}

// Fetch returns the user with id. A failed request or an empty body is
// reported as absent.
func (r *Reconciler) Fetch(ctx context.Context, id string) (*users.User, bool) {
	if id == "" {
		return nil, false
	}
	ctx = r.scope(ctx, "fetch", "")
	return r.fetch(ctx, id)
}

func (r *Reconciler) findID(ctx context.Context, login string) (string, bool) {
	log := logging.FromContext(ctx)

	all, err := r.ListUsers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Listing users failed")
		return "", false
	}

	id, found := "", false
	for _, u := range all {
		if u.Login != login {
			continue
		}
		if found {
			log.Warn().Str("user_id", id).Str("duplicate_id", u.ID).Msg("Duplicate login in directory, using first match")
			continue
		}
		id, found = u.ID, true
	}

	log.Debug().Bool("found", found).Int("scanned", len(all)).Msg("Resolved login")
	return id, found
}

func (r *Reconciler) fetch(ctx context.Context, id string) (*users.User, bool) {
	log := logging.FromContext(ctx).With().Str("user_id", id).Logger()

	raw, err := r.dir.Request(ctx, http.MethodGet, directory.UserPath(id), nil)
	if err != nil {
		log.Warn().Err(err).Msg("Fetching user failed")
		return nil, false
	}
	if isEmpty(raw) {
		log.Debug().Msg("Empty user record")
		return nil, false
	}

	var u users.User
	if err := json.Unmarshal(raw, &u); err != nil {
		log.Warn().Err(errors.WrapParse("json", directory.UserPath(id), err)).Msg("Decoding user failed")
		return nil, false
	}
	return &u, true
}

func isEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
