// Package directory talks to an RBAC users API.
//
// Client is the narrow surface the reconciler consumes: raw JSON requests
// against the users collection and a password reset. HTTPClient implements
// it over HTTPS with token authentication.
package directory

import (
	"context"
	"encoding/json"
)

// Requester issues one authenticated call and returns the raw response
// body. Any non-2xx status is an error.
type Requester interface {
	Request(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// PasswordResetter sets a user's password out of band of the users
// resource.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, login, password string) error
}

// Client is everything the reconciler needs from a directory.
type Client interface {
	Requester
	PasswordResetter
}

// UserPath returns the path of a single user record.
func UserPath(id string) string {
	return usersPath + "/" + id
}
