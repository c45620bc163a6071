package users_test

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/agentstation/roster/pkg/users"
)

func TestRoleIDsJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  users.RoleIDs
	}{
		{"list of numbers", `[1, 2]`, users.Roles("1", "2")},
		{"list of strings", `["r1","r2"]`, users.Roles("r1", "r2")},
		{"bare number", `3`, users.Roles("3")},
		{"bare string", `"r1"`, users.Roles("r1")},
		{"empty list", `[]`, users.RoleIDs{}},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got users.RoleIDs
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleIDsYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  users.RoleIDs
	}{
		{"sequence", "role_ids: [1, 2]", users.Roles("1", "2")},
		{"block sequence", "role_ids:\n  - r1\n  - r2", users.Roles("r1", "r2")},
		{"bare scalar", "role_ids: 3", users.Roles("3")},
		{"bare string", "role_ids: r1", users.Roles("r1")},
		{"float keeps text", "role_ids: [1.5e3]", users.RoleIDs{{ID: "1.5e3"}}},
		{"octal keeps text", "role_ids: 0o17", users.RoleIDs{{ID: "0o17"}}},
		{"quoted number stays string", `role_ids: ["7"]`, users.RoleIDs{{ID: "7", Quoted: true}}},
		{"null", "role_ids: null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				RoleIDs users.RoleIDs `yaml:"role_ids"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &doc))
			assert.Equal(t, tt.want, doc.RoleIDs)
		})
	}
}

func TestRoleIDMarshal(t *testing.T) {
	tests := []struct {
		name string
		ids  users.RoleIDs
		want string
	}{
		{"integer and name", users.Roles("1", "admins"), `[1,"admins"]`},
		{"negative integer", users.Roles("-4"), `[-4]`},
		{"leading zero stays text", users.Roles("007"), `["007"]`},
		{"plus sign stays text", users.Roles("+1"), `["+1"]`},
		{"negative zero stays text", users.Roles("-0"), `["-0"]`},
		{"beyond int64 stays text", users.Roles("99999999999999999999"), `["99999999999999999999"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ids)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestRoleIDsJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"numbers", `[1,2]`},
		{"string that looks numeric", `["123"]`},
		{"mixed", `[5,"5","r1"]`},
		{"exponent", `[1e21]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids users.RoleIDs
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ids))
			out, err := json.Marshal(ids)
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(out))
		})
	}
}

func TestNewUserWithOddRoleIDs(t *testing.T) {
	out, err := json.Marshal(users.NewUser{Login: "x", RoleIDs: users.Roles("007", "+1")})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"role_ids":["007","+1"]`)
}

func TestRoleIDsEqualIgnoresWireForm(t *testing.T) {
	var fromString users.RoleIDs
	require.NoError(t, json.Unmarshal([]byte(`["123"]`), &fromString))

	assert.True(t, fromString.Equal(users.Roles("123")))
	assert.NotEqual(t, users.Roles("123"), fromString)
}

func TestRoleIDsEqual(t *testing.T) {
	assert.True(t, users.Roles("1", "2").Equal(users.Roles("2", "1")))
	assert.True(t, users.RoleIDs(nil).Equal(users.RoleIDs{}))
	assert.False(t, users.Roles("1").Equal(users.Roles("1", "2")))
	assert.False(t, users.Roles("1", "3").Equal(users.Roles("1", "2")))
}

func TestRoleIDsNormalize(t *testing.T) {
	assert.NotNil(t, users.RoleIDs(nil).Normalize())
	assert.Empty(t, users.RoleIDs(nil).Normalize())
	assert.Equal(t, users.Roles("r1"), users.Roles("r1").Normalize())
}

// Config tooling outside roster often decodes with yaml.v3; RoleIDs must
// coerce scalars there too.
func TestRoleIDsYAMLv3(t *testing.T) {
	var doc struct {
		Roles users.RoleIDs `yaml:"role_ids"`
	}

	require.NoError(t, yamlv3.Unmarshal([]byte("role_ids: 3\n"), &doc))
	assert.Equal(t, users.Roles("3"), doc.Roles)

	require.NoError(t, yamlv3.Unmarshal([]byte("role_ids: [1, r2]\n"), &doc))
	assert.Equal(t, users.Roles("1", "r2"), doc.Roles)

	require.NoError(t, yamlv3.Unmarshal([]byte("role_ids: [1e21, \"7\", 0o17]\n"), &doc))
	assert.Equal(t, users.RoleIDs{{ID: "1e21"}, {ID: "7", Quoted: true}, {ID: "0o17"}}, doc.Roles)
}

func TestRoleIDsYAMLRejectsMapping(t *testing.T) {
	var doc struct {
		Roles users.RoleIDs `yaml:"role_ids"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("role_ids:\n  admin: 1\n"), &doc))
	assert.Error(t, yamlv3.Unmarshal([]byte("role_ids:\n  admin: 1\n"), &doc))
}

func TestRoleIDMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]users.RoleIDs{"role_ids": {users.ParseRoleID("3"), {ID: "7", Quoted: true}}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "- 3\n")
	assert.Contains(t, string(out), `- "7"`)
}
