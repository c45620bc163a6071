package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/roster/pkg/constants"
)

func TestAuthenticators(t *testing.T) {
	tests := []struct {
		name string
		auth Authenticator
		want http.Header
	}{
		{"none", &NoAuth{}, http.Header{}},
		{"bearer", &BearerAuth{}, http.Header{"Authorization": {"Bearer tok"}}},
		{"rbac token header", &HeaderAuth{Header: constants.AuthHeader}, http.Header{"X-Authentication": {"tok"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &http.Request{Header: http.Header{}}
			tt.auth.Apply(req, "tok")
			assert.Equal(t, tt.want, req.Header)
		})
	}
}
