// Package directorytest provides an in-memory RBAC users API for tests.
//
// The server keeps users in listing order, assigns uuid ids on create,
// records every request it receives and can be told to fail specific
// routes:
//
//	srv := directorytest.New(t, users.User{Login: "admin"})
//	client := directory.NewHTTPClient(srv.URL(), directorytest.Token)
//	srv.FailOn(http.MethodPut, "/users/"+id, http.StatusInternalServerError)
package directorytest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/users"
)

// Token is the API token the server accepts when auth is enabled.
const Token = "test-token"

// Call is one recorded request.
type Call struct {
	Method string
	Path   string
	Body   string
}

type failure struct {
	method, path string
	status       int
}

// Server is a fake users directory.
type Server struct {
	srv *httptest.Server

	mu        sync.Mutex
	users     []users.User
	passwords map[string]string
	tokens    map[string]string // reset token -> user id
	calls     []Call
	failures  []failure
	token     string
}

// New starts a server seeded with the given users. Seed users without an id
// get one. The server is closed when the test ends.
func New(t testing.TB, seed ...users.User) *Server {
	t.Helper()

	s := &Server{
		passwords: make(map[string]string),
		tokens:    make(map[string]string),
	}
	for _, u := range seed {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		u.RoleIDs = u.RoleIDs.Normalize()
		s.users = append(s.users, u.Clone())
	}

	s.srv = httptest.NewServer(s.routes())
	t.Cleanup(s.srv.Close)
	return s
}

// RequireToken makes the server reject requests without the X-Authentication
// header set to token.
func (s *Server) RequireToken(token string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s
}

// URL returns the API root.
func (s *Server) URL() string {
	return s.srv.URL
}

// FailOn makes requests matching method and path return status.
func (s *Server) FailOn(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, path: path, status: status})
}

// Calls returns a copy of the recorded requests.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallCount returns how many requests matched method and path. An empty
// path matches any path under method.
func (s *Server) CallCount(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && (path == "" || c.Path == path) {
			n++
		}
	}
	return n
}

// Writes returns the recorded POST and PUT requests.
func (s *Server) Writes() []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Method == http.MethodPost || c.Method == http.MethodPut {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls clears the request log.
func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// Users returns a copy of the stored users in listing order.
func (s *Server) Users() []users.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]users.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// User returns the stored user with id.
func (s *Server) User(id string) (users.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.users[i].Clone(), true
	}
	return users.User{}, false
}

// UserByLogin returns the first stored user with login.
func (s *Server) UserByLogin(login string) (users.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Login == login {
			return u.Clone(), true
		}
	}
	return users.User{}, false
}

// Password returns the last password set for login.
func (s *Server) Password(login string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Login == login {
			pw, ok := s.passwords[u.ID]
			return pw, ok
		}
	}
	return "", false
}

func (s *Server) index(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.authenticate)
	r.Use(s.inject)

	r.Route(constants.UsersPath, func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Post("/", s.createUser)
		r.Get("/{id}", s.getUser)
		r.Put("/{id}", s.replaceUser)
		r.Post("/{id}/password/reset", s.mintResetToken)
	})
	r.Post(constants.AuthResetPath, s.redeemResetToken)
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		token := s.token
		s.mu.Unlock()

		if token != "" && r.Header.Get(constants.AuthHeader) != token {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status := 0
		for _, f := range s.failures {
			if f.method == r.Method && f.path == r.URL.Path {
				status = f.status
				break
			}
		}
		s.mu.Unlock()

		if status != 0 {
			writeError(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Users())
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	u, ok := s.User(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req users.NewUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Login == "" {
		writeError(w, http.StatusBadRequest, "login is required")
		return
	}

	u := users.User{
		ID:          uuid.NewString(),
		Login:       req.Login,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		RoleIDs:     req.RoleIDs.Normalize(),
	}

	s.mu.Lock()
	s.users = append(s.users, u.Clone())
	if req.Password != nil {
		s.passwords[u.ID] = *req.Password
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) replaceUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var u users.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	i := s.index(id)
	if i >= 0 {
		u.ID = id
		u.RoleIDs = u.RoleIDs.Normalize()
		s.users[i] = u.Clone()
	}
	s.mu.Unlock()

	if i < 0 {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) mintResetToken(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	i := s.index(id)
	token := ""
	if i >= 0 {
		token = uuid.NewString()
		s.tokens[token] = id
	}
	s.mu.Unlock()

	if i < 0 {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusCreated)
	_, _ = io.WriteString(w, token)
}

func (s *Server) redeemResetToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	id, ok := s.tokens[req.Token]
	if ok {
		delete(s.tokens, req.Token)
		s.passwords[id] = req.Password
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusForbidden, "invalid reset token")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"kind": http.StatusText(status), "msg": msg})
}
