package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

func TestClientDo(t *testing.T) {
	var got http.Header
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(&HeaderAuth{Header: "X-Authentication"}, "secret")

	req, err := NewJSONRequest(context.Background(), http.MethodPost, srv.URL+"/users", map[string]string{"login": "bob"})
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	body, err := ReadBody(resp)
	require.NoError(t, err)

	assert.Empty(t, body)
	assert.Equal(t, "secret", got.Get("X-Authentication"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Len(t, got.Get("X-Request-Id"), 26)
	assert.JSONEq(t, `{"login":"bob"}`, gotBody)
}

func TestClientNoTokenSkipsAuth(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	c := New(&BearerAuth{}, "")
	req, err := NewJSONRequest(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := c.Do(req)
	require.NoError(t, err)
	_, err = ReadBody(resp)
	require.NoError(t, err)

	assert.Empty(t, got.Get("Authorization"))
	assert.Empty(t, got.Get("Content-Type"))
}

func TestReadBodyErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, errors.IsNotFound},
		{"forbidden", http.StatusForbidden, errors.IsUnauthorized},
		{"rate limited", http.StatusTooManyRequests, errors.IsRateLimited},
		{"server error", http.StatusBadGateway, errors.IsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			req, err := NewJSONRequest(context.Background(), http.MethodGet, srv.URL+"/users/x", nil)
			require.NoError(t, err)
			resp, err := New(nil, "").Do(req)
			require.NoError(t, err)

			_, err = ReadBody(resp)
			require.Error(t, err)
			assert.True(t, tt.check(err))

			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "/users/x", apiErr.Path)
			assert.Equal(t, "nope", apiErr.Message)
		})
	}
}

func TestReadBodyTruncatesOnRuneBoundary(t *testing.T) {
	msg := "a" + strings.Repeat("é", maxErrorBody)
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body:       io.NopCloser(strings.NewReader(msg)),
	}

	_, err := ReadBody(resp)
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, utf8.ValidString(apiErr.Message))
	assert.Len(t, apiErr.Message, maxErrorBody-1)
	assert.True(t, strings.HasPrefix(msg, apiErr.Message))
}

type failingCloser struct{ io.Reader }

func (failingCloser) Close() error { return io.ErrClosedPipe }

func TestReadBodyLogsCloseFailureToRequestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	req, err := NewJSONRequest(ctx, http.MethodGet, "http://console.example/users", nil)
	require.NoError(t, err)

	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       failingCloser{strings.NewReader("[]")},
		Request:    req,
	}

	body, err := ReadBody(resp)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
	tl.AssertContains(t, "Failed to close response body")
}

func TestRateLimitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := New(nil, "", WithRateLimit(0.001, 1))

	first, err := NewJSONRequest(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := c.Do(first)
	require.NoError(t, err)
	_, _ = ReadBody(resp)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	second, err := NewJSONRequest(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = c.Do(second)
	assert.Error(t, err)
}

func TestWithTimeout(t *testing.T) {
	c := New(nil, "", WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, c.http.Timeout)

	c = New(nil, "", WithTimeout(0))
	assert.Equal(t, DefaultHTTPTimeout, c.http.Timeout)
}

func TestTLSConfig(t *testing.T) {
	cfg, err := TLSConfig("", false)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	cfg, err = TLSConfig("", true)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.InsecureSkipVerify)

	_, err = TLSConfig(filepath.Join(t.TempDir(), "missing.pem"), false)
	assert.Error(t, err)

	bogus := filepath.Join(t.TempDir(), "bogus.pem")
	require.NoError(t, os.WriteFile(bogus, []byte("not a cert"), 0o600))
	_, err = TLSConfig(bogus, false)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestTLSServer(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg, err := TLSConfig("", true)
	require.NoError(t, err)
	c := New(nil, "", WithTLSConfig(cfg))

	req, err := NewJSONRequest(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := c.Do(req)
	require.NoError(t, err)
	body, err := ReadBody(resp)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}
