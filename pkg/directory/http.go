package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/agentstation/roster/internal/transport"
	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/users"
)

const usersPath = constants.UsersPath

// HTTPClient is a Client backed by the RBAC REST API.
type HTTPClient struct {
	baseURL string
	http    *transport.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client rooted at baseURL, for example
// https://console:4433/rbac-api/v1. The token is sent in X-Authentication.
func NewHTTPClient(baseURL, token string, opts ...transport.Option) *HTTPClient {
	auth := &transport.HeaderAuth{Header: constants.AuthHeader}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    transport.New(auth, token, opts...),
	}
}

// BaseURL returns the API root the client was built with.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Request sends body as JSON to path and returns the response body. An
// empty 2xx body is returned as an empty RawMessage with a nil error.
func (c *HTTPClient) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	req, err := transport.NewJSONRequest(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapResource(strings.ToLower(method), "request", path, err)
	}

	return transport.ReadBody(resp)
}

type resetRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPassword sets login's password. The RBAC API does this in two steps:
// mint a one-time token for the user, then redeem it with the new password.
func (c *HTTPClient) ResetPassword(ctx context.Context, login, password string) error {
	logger := logging.FromContext(ctx).With().Str("login", login).Logger()

	id, err := c.lookup(ctx, login)
	if err != nil {
		return err
	}

	raw, err := c.do(ctx, http.MethodPost, UserPath(id)+"/password/reset", nil)
	if err != nil {
		return errors.WrapResource("reset", "password", login, err)
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return errors.NewResourceError("reset", "password", login, errors.ErrUnavailable)
	}

	if _, err := c.do(ctx, http.MethodPost, constants.AuthResetPath, resetRequest{Token: token, Password: password}); err != nil {
		return errors.WrapResource("reset", "password", login, err)
	}

	logger.Debug().Str("user_id", id).Msg("Password reset token redeemed")
	return nil
}

func (c *HTTPClient) lookup(ctx context.Context, login string) (string, error) {
	raw, err := c.do(ctx, http.MethodGet, usersPath, nil)
	if err != nil {
		return "", errors.WrapResource("list", "users", "", err)
	}

	var all []users.User
	if err := json.Unmarshal(raw, &all); err != nil {
		return "", errors.WrapParse("json", usersPath, err)
	}
	for _, u := range all {
		if u.Login == login {
			return u.ID, nil
		}
	}
	return "", errors.NewNotFoundError("user", login)
}
