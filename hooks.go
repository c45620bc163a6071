package roster

import (
	"sync"

	"github.com/agentstation/roster/pkg/users"
)

// Hook function types for user events
type (
	// UserCreatedHook is called after a user is created
	UserCreatedHook func(user users.NewUser)

	// UserUpdatedHook is called after a user record is replaced
	UserUpdatedHook func(old, merged users.User)
)

// hooks manages event callbacks for directory writes
type hooks struct {
	mu            sync.RWMutex
	onUserCreated []UserCreatedHook
	onUserUpdated []UserUpdatedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnUserCreated registers a callback for when users are created
func (h *hooks) OnUserCreated(fn UserCreatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUserCreated = append(h.onUserCreated, fn)
}

// OnUserUpdated registers a callback for when users are updated
func (h *hooks) OnUserUpdated(fn UserUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUserUpdated = append(h.onUserUpdated, fn)
}

func (h *hooks) userCreated(user users.NewUser) {
	h.mu.RLock()
	fns := append([]UserCreatedHook(nil), h.onUserCreated...)
	h.mu.RUnlock()

	user = user.Redacted()
	for _, hook := range fns {
		hook(user)
	}
}

func (h *hooks) userUpdated(old, merged users.User) {
	h.mu.RLock()
	fns := append([]UserUpdatedHook(nil), h.onUserUpdated...)
	h.mu.RUnlock()

	for _, hook := range fns {
		hook(old.Clone(), merged.Clone())
	}
}
