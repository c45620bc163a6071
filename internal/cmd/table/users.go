package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/roster/pkg/users"
)

// UsersToTableData converts users to table format. Wide output adds the
// id and the read-only directory attributes.
func UsersToTableData(list []users.User, wide bool) Data {
	headers := []string{"Login", "Email", "Display Name", "Roles", "Revoked", "Remote"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignCenter, AlignCenter}
	if wide {
		headers = append([]string{"ID"}, headers...)
		headers = append(headers, "Superuser", "Last Login")
		align = append([]Align{AlignLeft}, align...)
		align = append(align, AlignCenter, AlignLeft)
	}

	rows := make([][]string, 0, len(list))
	for _, u := range list {
		row := []string{
			orDash(u.Login),
			orDash(u.Email),
			orDash(u.DisplayName),
			FormatRoles(u.RoleIDs),
			FormatBool(u.IsRevoked),
			FormatBool(u.Remote),
		}
		if wide {
			row = append([]string{u.ID}, row...)
			row = append(row, FormatBool(u.IsSuperuser), FormatLastLogin(u.LastLogin))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// UserDetails renders one user as property/value rows.
func UserDetails(u users.User) Data {
	rows := [][]string{
		{"ID", u.ID},
		{"Login", orDash(u.Login)},
		{"Email", orDash(u.Email)},
		{"Display Name", orDash(u.DisplayName)},
		{"Roles", FormatRoles(u.RoleIDs)},
		{"Inherited Roles", FormatRoles(u.InheritedRoleIDs)},
		{"Groups", orDash(strings.Join(u.GroupIDs, ", "))},
		{"Revoked", strconv.FormatBool(u.IsRevoked)},
		{"Remote", strconv.FormatBool(u.Remote)},
		{"Superuser", strconv.FormatBool(u.IsSuperuser)},
		{"Group", strconv.FormatBool(u.IsGroup)},
		{"Last Login", FormatLastLogin(u.LastLogin)},
	}

	return Data{
		Headers:         []string{"Property", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// FormatRoles joins role ids in sorted order.
func FormatRoles(ids users.RoleIDs) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids.Sorted().Strings(), ", ")
}

// FormatLastLogin renders a login timestamp, or a dash for users who never
// logged in.
func FormatLastLogin(t *utc.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

// FormatBool renders true as a check and false as blank.
func FormatBool(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
