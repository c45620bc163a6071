// Package differ compares user records and reports field-level changes.
package differ

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ChangeType represents the type of change.
type ChangeType string

const (
	// ChangeTypeAdd indicates a value was set where there was none.
	ChangeTypeAdd ChangeType = "add"
	// ChangeTypeUpdate indicates a value was replaced.
	ChangeTypeUpdate ChangeType = "update"
	// ChangeTypeRemove indicates a value was cleared.
	ChangeTypeRemove ChangeType = "remove"
)

// FieldChange represents a change to a specific field.
type FieldChange struct {
	Path     string     // Field name (e.g., "email")
	OldValue string     // Previous value (string representation)
	NewValue string     // New value (string representation)
	Type     ChangeType // Type of change
}

// Changeset lists the field changes between two versions of one user.
type Changeset struct {
	ID      string        // Directory id of the user
	Login   string        // Login of the existing record
	Changes []FieldChange // Detailed list of field changes
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return c != nil && len(c.Changes) > 0
}

// Fields returns the names of the changed fields.
func (c *Changeset) Fields() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.Changes))
	for i, ch := range c.Changes {
		out[i] = ch.Path
	}
	return out
}

// String returns a one-line summary such as "email: a -> b; is_revoked: true -> false".
func (c *Changeset) String() string {
	if !c.HasChanges() {
		return "no changes"
	}
	parts := make([]string, len(c.Changes))
	for i, ch := range c.Changes {
		parts[i] = fmt.Sprintf("%s: %s -> %s", ch.Path, display(ch.OldValue), display(ch.NewValue))
	}
	return strings.Join(parts, "; ")
}

// MarshalZerologObject lets a changeset be attached to a log event with
// Object("changes", cs).
func (c *Changeset) MarshalZerologObject(e *zerolog.Event) {
	if c == nil {
		return
	}
	for _, ch := range c.Changes {
		e.Str(ch.Path, fmt.Sprintf("%s -> %s", display(ch.OldValue), display(ch.NewValue)))
	}
}

func display(v string) string {
	if v == "" {
		return `""`
	}
	return v
}
