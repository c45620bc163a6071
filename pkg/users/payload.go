package users

import "github.com/agentstation/roster/internal/utils/ptr"

// NewUser is the body of a create call. Password is omitted from the wire
// form when nil.
type NewUser struct {
	Login       string  `json:"login" yaml:"login"`
	Email       string  `json:"email" yaml:"email"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	RoleIDs     RoleIDs `json:"role_ids" yaml:"role_ids"`
	Password    *string `json:"password,omitempty" yaml:"password,omitempty"`
}

// Redacted returns a copy of n without the password.
func (n NewUser) Redacted() NewUser {
	n.Password = nil
	return n
}

// Patch lists the fields an update should change. A nil field keeps the
// existing value. Empty strings are treated the same as nil so an update
// cannot blank an identity field.
type Patch struct {
	Email       *string  `json:"email,omitempty" yaml:"email,omitempty"`
	DisplayName *string  `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	RoleIDs     *RoleIDs `json:"role_ids,omitempty" yaml:"role_ids,omitempty"`
	IsRevoked   *bool    `json:"is_revoked,omitempty" yaml:"is_revoked,omitempty"`
}

// Apply merges p onto existing and returns the result. The login argument
// is the login the caller resolved the user by. Remote users keep their
// login, email and display name.
func (p Patch) Apply(existing User, login string) User {
	merged := existing.Clone()

	if !existing.Remote {
		if login != "" {
			merged.Login = login
		}
		if e := ptr.Deref(p.Email, ""); e != "" {
			merged.Email = e
		}
		if d := ptr.Deref(p.DisplayName, ""); d != "" {
			merged.DisplayName = d
		}
	}

	if p.RoleIDs != nil {
		merged.RoleIDs = append(RoleIDs{}, (*p.RoleIDs).Normalize()...)
	}
	if p.IsRevoked != nil {
		merged.IsRevoked = *p.IsRevoked
	}
	return merged
}

// Desired is the target state for a single user.
type Desired struct {
	Login       string  `json:"login" yaml:"login"`
	Email       string  `json:"email" yaml:"email"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	Password    *string `json:"password,omitempty" yaml:"password,omitempty"`
	RoleIDs     RoleIDs `json:"role_ids" yaml:"role_ids"`
}

// Patch returns the update derived from d. Role ids are always supplied so
// the remote set converges to d's; revocation is left untouched.
func (d Desired) Patch() Patch {
	roles := d.RoleIDs.Normalize()
	return Patch{
		Email:       ptr.NonEmpty(d.Email),
		DisplayName: ptr.NonEmpty(d.DisplayName),
		RoleIDs:     &roles,
	}
}

// NewUser returns the create payload derived from d.
func (d Desired) NewUser() NewUser {
	return NewUser{
		Login:       d.Login,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		RoleIDs:     d.RoleIDs.Normalize(),
		Password:    d.Password,
	}
}
