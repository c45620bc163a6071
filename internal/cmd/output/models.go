package output

import (
	"io"

	"github.com/agentstation/roster/internal/cmd/table"
	"github.com/agentstation/roster/pkg/users"
)

// FormatUsers writes a user listing in the given format.
func FormatUsers(w io.Writer, list []users.User, format Format) error {
	formatter := NewFormatter(format)

	if format.IsTable() {
		return formatter.Format(w, fromTable(table.UsersToTableData(list, format == FormatWide)))
	}
	return formatter.Format(w, list)
}

// FormatUser writes a single user in the given format.
func FormatUser(w io.Writer, u users.User, format Format) error {
	formatter := NewFormatter(format)

	if format.IsTable() {
		return formatter.Format(w, fromTable(table.UserDetails(u)))
	}
	return formatter.Format(w, u)
}

func fromTable(d table.Data) Data {
	return Data{Headers: d.Headers, Rows: d.Rows, ColumnAlignment: d.ColumnAlignment}
}
