package users_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster/internal/utils/ptr"
	"github.com/agentstation/roster/pkg/users"
)

const directoryUser = `{
	"id": "42bf351c-f9ec-40af-84ad-e976fec7f4bd",
	"login": "admin",
	"email": "admin@example.com",
	"display_name": "Administrator",
	"role_ids": [1],
	"is_revoked": false,
	"remote": false,
	"is_superuser": true,
	"is_group": false,
	"last_login": "2024-05-01T10:00:00Z",
	"inherited_role_ids": [],
	"group_ids": [],
	"is_remote_managed": "ldap"
}`

func TestUserUnknownFieldsRoundTrip(t *testing.T) {
	var u users.User
	require.NoError(t, json.Unmarshal([]byte(directoryUser), &u))

	assert.Equal(t, "admin", u.Login)
	assert.Equal(t, users.Roles("1"), u.RoleIDs)
	assert.True(t, u.IsSuperuser)
	require.NotNil(t, u.LastLogin)
	require.Contains(t, u.Extra, "is_remote_managed")

	out, err := json.Marshal(u)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.Equal(t, "ldap", fields["is_remote_managed"])
	assert.Equal(t, "admin", fields["login"])
	assert.Equal(t, []any{float64(1)}, fields["role_ids"])
}

func TestUserMarshalNilRoles(t *testing.T) {
	out, err := json.Marshal(users.User{Login: "bob"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"role_ids":[]`)
	assert.Contains(t, string(out), `"last_login":null`)
}

func TestNewUserPassword(t *testing.T) {
	t.Run("omitted when nil", func(t *testing.T) {
		out, err := json.Marshal(users.NewUser{Login: "bob", RoleIDs: users.RoleIDs{}})
		require.NoError(t, err)
		assert.NotContains(t, string(out), "password")
	})

	t.Run("present when supplied", func(t *testing.T) {
		out, err := json.Marshal(users.NewUser{Login: "bob", Password: ptr.String("s3cret")})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"password":"s3cret"`)
	})

	t.Run("redacted copy", func(t *testing.T) {
		n := users.NewUser{Login: "bob", Password: ptr.String("s3cret")}
		assert.Nil(t, n.Redacted().Password)
		assert.NotNil(t, n.Password)
	})
}

func TestPatchApply(t *testing.T) {
	existing := users.User{
		ID:          "u1",
		Login:       "bob",
		Email:       "bob@example.com",
		DisplayName: "Bob",
		RoleIDs:     users.Roles("1", "2"),
		IsRevoked:   true,
	}

	tests := []struct {
		name     string
		existing func(users.User) users.User
		login    string
		patch    users.Patch
		check    func(t *testing.T, got users.User)
	}{
		{
			name:  "empty patch keeps everything",
			login: "bob",
			check: func(t *testing.T, got users.User) {
				assert.Equal(t, existing, got)
			},
		},
		{
			name:  "empty strings are not supplied",
			login: "bob",
			patch: users.Patch{Email: ptr.String(""), DisplayName: ptr.String("")},
			check: func(t *testing.T, got users.User) {
				assert.Equal(t, "bob@example.com", got.Email)
				assert.Equal(t, "Bob", got.DisplayName)
			},
		},
		{
			name:  "supplied strings overwrite",
			login: "bob",
			patch: users.Patch{Email: ptr.String("new@example.com")},
			check: func(t *testing.T, got users.User) {
				assert.Equal(t, "new@example.com", got.Email)
				assert.Equal(t, "Bob", got.DisplayName)
			},
		},
		{
			name:  "roles replace the set",
			login: "bob",
			patch: users.Patch{RoleIDs: ptr.To(users.Roles("3"))},
			check: func(t *testing.T, got users.User) {
				assert.Equal(t, users.Roles("3"), got.RoleIDs)
			},
		},
		{
			name:  "empty roles clear the set",
			login: "bob",
			patch: users.Patch{RoleIDs: ptr.To(users.RoleIDs{})},
			check: func(t *testing.T, got users.User) {
				assert.NotNil(t, got.RoleIDs)
				assert.Empty(t, got.RoleIDs)
			},
		},
		{
			name:  "explicit false revoke is honoured",
			login: "bob",
			patch: users.Patch{IsRevoked: ptr.Bool(false)},
			check: func(t *testing.T, got users.User) {
				assert.False(t, got.IsRevoked)
			},
		},
		{
			name: "remote users keep identity fields",
			existing: func(u users.User) users.User {
				u.Remote = true
				return u
			},
			login: "robert",
			patch: users.Patch{
				Email:       ptr.String("x@example.com"),
				DisplayName: ptr.String("X"),
				RoleIDs:     ptr.To(users.Roles("9")),
			},
			check: func(t *testing.T, got users.User) {
				assert.Equal(t, "bob", got.Login)
				assert.Equal(t, "bob@example.com", got.Email)
				assert.Equal(t, "Bob", got.DisplayName)
				assert.Equal(t, users.Roles("9"), got.RoleIDs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := existing.Clone()
			if tt.existing != nil {
				base = tt.existing(base)
			}
			got := tt.patch.Apply(base, tt.login)
			tt.check(t, got)
		})
	}
}

func TestPatchApplyKeepsReadOnlyFields(t *testing.T) {
	existing := users.User{
		ID:               "u1",
		Login:            "bob",
		Email:            "bob@example.com",
		RoleIDs:          users.Roles("1"),
		IsSuperuser:      true,
		InheritedRoleIDs: users.Roles("9"),
		GroupIDs:         []string{"g1"},
		Extra:            map[string]json.RawMessage{"origin": json.RawMessage(`"ldap"`)},
	}

	merged := users.Patch{Email: ptr.String("robert@example.com")}.Apply(existing, "bob")

	want := existing
	want.Email = "robert@example.com"
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchApplyDoesNotAlias(t *testing.T) {
	existing := users.User{Login: "bob", RoleIDs: users.Roles("1")}
	roles := users.Roles("2")
	merged := users.Patch{RoleIDs: &roles}.Apply(existing, "bob")

	roles[0] = users.ParseRoleID("changed")
	assert.Equal(t, users.Roles("2"), merged.RoleIDs)
	assert.Equal(t, users.Roles("1"), existing.RoleIDs)
}

func TestDesired(t *testing.T) {
	d := users.Desired{Login: "bob", Email: "bob@example.com", Password: ptr.String("pw")}

	p := d.Patch()
	require.NotNil(t, p.Email)
	assert.Nil(t, p.DisplayName)
	require.NotNil(t, p.RoleIDs)
	assert.Empty(t, *p.RoleIDs)
	assert.Nil(t, p.IsRevoked)

	n := d.NewUser()
	assert.Equal(t, "bob", n.Login)
	assert.NotNil(t, n.RoleIDs)
	assert.Equal(t, "pw", *n.Password)
}
