package users

import (
	"encoding/json"

	"github.com/agentstation/utc"
)

// User is a record in the directory's users collection.
type User struct {
	ID          string  `json:"id,omitempty" yaml:"id,omitempty"`
	Login       string  `json:"login" yaml:"login"`
	Email       string  `json:"email" yaml:"email"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	RoleIDs     RoleIDs `json:"role_ids" yaml:"role_ids"`
	IsRevoked   bool    `json:"is_revoked" yaml:"is_revoked"`

	// Remote users are owned by an external identity provider; their login,
	// email and display name are read-only here.
	Remote bool `json:"remote" yaml:"remote"`

	// Read-only attributes maintained by the directory.
	IsSuperuser      bool      `json:"is_superuser" yaml:"is_superuser"`
	IsGroup          bool      `json:"is_group" yaml:"is_group"`
	LastLogin        *utc.Time `json:"last_login" yaml:"last_login,omitempty"`
	InheritedRoleIDs RoleIDs   `json:"inherited_role_ids,omitempty" yaml:"inherited_role_ids,omitempty"`
	GroupIDs         []string  `json:"group_ids,omitempty" yaml:"group_ids,omitempty"`

	// Extra holds fields the directory returned that User does not model.
	// They are written back unchanged on update.
	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

type userAlias User

var knownUserFields = []string{
	"id", "login", "email", "display_name", "role_ids", "is_revoked", "remote",
	"is_superuser", "is_group", "last_login", "inherited_role_ids", "group_ids",
}

// UnmarshalJSON decodes a user, keeping unknown fields in Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	var alias userAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range knownUserFields {
		delete(all, k)
	}
	if len(all) == 0 {
		all = nil
	}

	*u = User(alias)
	u.Extra = all
	return nil
}

// MarshalJSON encodes a user including any Extra fields.
func (u User) MarshalJSON() ([]byte, error) {
	alias := userAlias(u)
	alias.RoleIDs = alias.RoleIDs.Normalize()
	known, err := json.Marshal(alias)
	if err != nil {
		return nil, err
	}
	if len(u.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]json.RawMessage, len(u.Extra)+len(knownUserFields))
	for k, v := range u.Extra {
		merged[k] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// Clone returns a deep copy of u.
func (u User) Clone() User {
	out := u
	if u.RoleIDs != nil {
		out.RoleIDs = append(RoleIDs{}, u.RoleIDs...)
	}
	if u.InheritedRoleIDs != nil {
		out.InheritedRoleIDs = append(RoleIDs{}, u.InheritedRoleIDs...)
	}
	if u.GroupIDs != nil {
		out.GroupIDs = append([]string{}, u.GroupIDs...)
	}
	if u.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(u.Extra))
		for k, v := range u.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
