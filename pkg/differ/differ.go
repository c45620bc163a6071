package differ

import (
	"strconv"
	"strings"

	"github.com/agentstation/roster/pkg/users"
)

// Differ handles change detection between user records.
type Differ interface {
	// User compares an existing record with the record about to replace it.
	User(existing, updated users.User) *Changeset
}

// differ is the default implementation of Differ.
type differ struct {
	ignoreFields map[string]bool
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		ignoreFields: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// User compares two user records with the default Differ.
func User(existing, updated users.User) *Changeset {
	return New().User(existing, updated)
}

// User compares the fields the reconciler may write. Role ids are compared
// as a set.
func (diff *differ) User(existing, updated users.User) *Changeset {
	cs := &Changeset{ID: existing.ID, Login: existing.Login}

	diff.compareString(cs, "login", existing.Login, updated.Login)
	diff.compareString(cs, "email", existing.Email, updated.Email)
	diff.compareString(cs, "display_name", existing.DisplayName, updated.DisplayName)

	if !diff.ignoreFields["role_ids"] && !existing.RoleIDs.Equal(updated.RoleIDs) {
		cs.Changes = append(cs.Changes, change("role_ids", joinRoles(existing.RoleIDs), joinRoles(updated.RoleIDs)))
	}

	if !diff.ignoreFields["is_revoked"] && existing.IsRevoked != updated.IsRevoked {
		cs.Changes = append(cs.Changes, FieldChange{
			Path:     "is_revoked",
			OldValue: strconv.FormatBool(existing.IsRevoked),
			NewValue: strconv.FormatBool(updated.IsRevoked),
			Type:     ChangeTypeUpdate,
		})
	}

	return cs
}

func (diff *differ) compareString(cs *Changeset, path, oldValue, newValue string) {
	if diff.ignoreFields[path] || oldValue == newValue {
		return
	}
	cs.Changes = append(cs.Changes, change(path, oldValue, newValue))
}

func change(path, oldValue, newValue string) FieldChange {
	fc := FieldChange{Path: path, OldValue: oldValue, NewValue: newValue, Type: ChangeTypeUpdate}
	switch {
	case oldValue == "":
		fc.Type = ChangeTypeAdd
	case newValue == "":
		fc.Type = ChangeTypeRemove
	}
	return fc
}

func joinRoles(ids users.RoleIDs) string {
	return strings.Join(ids.Sorted().Strings(), ",")
}
