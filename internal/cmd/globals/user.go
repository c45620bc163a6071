package globals

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/roster/internal/utils/ptr"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/users"
)

// UserFlags holds the user attribute flags shared by create, update and
// ensure.
type UserFlags struct {
	Email         string
	DisplayName   string
	Password      string
	PasswordStdin bool
	Roles         []string
	Revoked       bool
	File          string

	fs *pflag.FlagSet
}

// UserFlagSet selects which optional flags a command accepts.
type UserFlagSet struct {
	Password bool
	Revoked  bool
	File     bool
}

// AddUserFlags adds user attribute flags to a command.
func AddUserFlags(cmd *cobra.Command, set UserFlagSet) *UserFlags {
	fs := cmd.Flags()
	flags := &UserFlags{fs: fs}

	fs.StringVar(&flags.Email, "email", "", "Email address")
	fs.StringVar(&flags.DisplayName, "display-name", "", "Display name")
	fs.StringSliceVar(&flags.Roles, "role", nil,
		"Role id to assign (repeatable or comma separated); replaces the current set")

	if set.Password {
		fs.StringVar(&flags.Password, "password", "", "Password (prefer --password-stdin)")
		fs.BoolVar(&flags.PasswordStdin, "password-stdin", false, "Read the password from stdin")
		cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	}
	if set.Revoked {
		fs.BoolVar(&flags.Revoked, "revoked", false, "Revoke (--revoked) or restore (--revoked=false) the user")
	}
	if set.File {
		fs.StringVarP(&flags.File, "file", "f", "", "Read user attributes from a YAML or JSON file")
	}

	return flags
}

func (f *UserFlags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// Patch builds an update from the flags that were set on the command line.
// Unset flags leave the existing value alone.
func (f *UserFlags) Patch() users.Patch {
	var p users.Patch
	if f.changed("email") {
		p.Email = ptr.NonEmpty(f.Email)
	}
	if f.changed("display-name") {
		p.DisplayName = ptr.NonEmpty(f.DisplayName)
	}
	if f.changed("role") {
		roles := users.Roles(f.Roles...)
		p.RoleIDs = &roles
	}
	if f.changed("revoked") {
		p.IsRevoked = ptr.Bool(f.Revoked)
	}
	return p
}

// Desired builds the target state for login. Values from --file are loaded
// first; flags given on the command line override them.
func (f *UserFlags) Desired(login string, stdin io.Reader) (users.Desired, error) {
	d := users.Desired{}
	if f.File != "" {
		loaded, err := LoadDesired(f.File)
		if err != nil {
			return users.Desired{}, err
		}
		d = loaded
	}
	d.Login = login

	if f.changed("email") {
		d.Email = f.Email
	}
	if f.changed("display-name") {
		d.DisplayName = f.DisplayName
	}
	if f.changed("role") {
		d.RoleIDs = users.Roles(f.Roles...)
	}

	password, err := f.password(stdin)
	if err != nil {
		return users.Desired{}, err
	}
	if password != nil {
		d.Password = password
	}

	return d, nil
}

func (f *UserFlags) password(stdin io.Reader) (*string, error) {
	switch {
	case f.PasswordStdin:
		pw, err := ReadPassword(stdin)
		if err != nil {
			return nil, err
		}
		return &pw, nil
	case f.changed("password"):
		return ptr.String(f.Password), nil
	default:
		return nil, nil
	}
}

// ReadPassword reads the first line of r without its line ending.
func ReadPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.WrapIO("read", "stdin", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", &errors.ValidationError{Field: "password", Message: "empty password on stdin"}
	}
	return line, nil
}

// LoadDesired reads one user document. JSON documents are valid YAML, so
// both are decoded with the YAML decoder.
func LoadDesired(path string) (users.Desired, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return users.Desired{}, errors.WrapIO("read", path, err)
	}

	var d users.Desired
	if err := yaml.Unmarshal(data, &d); err != nil {
		return users.Desired{}, errors.WrapParse("yaml", path, err)
	}
	return d, nil
}
