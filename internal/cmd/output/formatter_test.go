package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster/pkg/users"
)

func sampleUsers() []users.User {
	return []users.User{
		{ID: "u1", Login: "bob", Email: "bob@example.com", RoleIDs: users.Roles("1")},
		{ID: "u2", Login: "carol", RoleIDs: users.Roles("r2")},
	}
}

func TestFormatUsers(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatUsers(&buf, sampleUsers(), FormatTable))
		out := buf.String()
		assert.Contains(t, out, "bob@example.com")
		assert.Contains(t, out, "carol")
		assert.NotContains(t, out, "u1")
	})

	t.Run("wide", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatUsers(&buf, sampleUsers(), FormatWide))
		assert.Contains(t, buf.String(), "u1")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatUsers(&buf, sampleUsers(), FormatJSON))

		var decoded []users.User
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "bob", decoded[0].Login)
		assert.Contains(t, buf.String(), `"role_ids": [`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatUsers(&buf, sampleUsers(), FormatYAML))
		assert.Contains(t, buf.String(), "login: bob")
	})
}

func TestFormatUser(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatUser(&buf, sampleUsers()[0], FormatTable))
	assert.Contains(t, buf.String(), "bob@example.com")
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestTableFormatterRecord(t *testing.T) {
	type result struct {
		Login  string `json:"login"`
		DryRun bool   `json:"dry_run"`
		Reset  *bool  `json:"password_reset"`
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, result{Login: "bob", DryRun: true}))
	out := buf.String()
	assert.Contains(t, out, "Dry Run")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "Password Reset")

	assert.Error(t, NewFormatter(FormatTable).Format(&buf, []string{"not", "an", "object"}))
}

func TestFormatIsTable(t *testing.T) {
	assert.True(t, FormatTable.IsTable())
	assert.True(t, FormatWide.IsTable())
	assert.True(t, Format("").IsTable())
	assert.False(t, FormatJSON.IsTable())
}
