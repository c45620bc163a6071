package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	yamlv3 "gopkg.in/yaml.v3"
)

// RoleID references a role in the directory. The RBAC service uses integer
// ids, but ids are kept opaque: the text is never reformatted, and Quoted
// records whether the id travels as a JSON string so it is written back in
// the form it was read.
type RoleID struct {
	ID     string
	Quoted bool
}

// ParseRoleID builds a RoleID from user input. Canonical integers are sent
// as numbers; anything else, including "007" or "+1", is sent as a string.
func ParseRoleID(s string) RoleID {
	return RoleID{ID: s, Quoted: !isCanonicalInt(s)}
}

func (r RoleID) String() string { return r.ID }

// MarshalJSON writes the id back as a number or a string, following Quoted.
func (r RoleID) MarshalJSON() ([]byte, error) {
	if !r.Quoted && isJSONNumber(r.ID) {
		return []byte(r.ID), nil
	}
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts a JSON number or string.
func (r *RoleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = RoleID{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RoleID{ID: s, Quoted: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("role id: %w", err)
	}
	*r = RoleID{ID: n.String()}
	return nil
}

// MarshalYAML renders canonical integer ids as YAML integers.
func (r RoleID) MarshalYAML() (any, error) {
	if !r.Quoted && isCanonicalInt(r.ID) {
		n, _ := strconv.ParseInt(r.ID, 10, 64)
		return n, nil
	}
	return r.ID, nil
}

func isCanonicalInt(s string) bool {
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == s
}

// isJSONNumber reports whether s is valid JSON number text.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

// RoleIDs is a set of role references. Order is not significant.
type RoleIDs []RoleID

// Roles builds a RoleIDs from plain strings.
func Roles(ids ...string) RoleIDs {
	out := make(RoleIDs, 0, len(ids))
	for _, id := range ids {
		out = append(out, ParseRoleID(id))
	}
	return out
}

// Normalize returns ids, or an empty non-nil slice when ids is nil, so the
// wire form is always a list.
func (ids RoleIDs) Normalize() RoleIDs {
	if ids == nil {
		return RoleIDs{}
	}
	return ids
}

// Strings returns the ids as plain strings.
func (ids RoleIDs) Strings() []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.ID
	}
	return out
}

// Equal reports whether both sets hold the same ids, ignoring order,
// repeats and wire form.
func (ids RoleIDs) Equal(other RoleIDs) bool {
	a, b := ids.set(), other.set()
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns a sorted copy.
func (ids RoleIDs) Sorted() RoleIDs {
	out := make(RoleIDs, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (ids RoleIDs) set() map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id.ID] = struct{}{}
	}
	return m
}

// UnmarshalJSON accepts a list, a single scalar, or null.
func (ids *RoleIDs) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*ids = nil
		return nil
	}
	if data[0] == '[' {
		var list []RoleID
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*ids = list
		return nil
	}
	var one RoleID
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*ids = RoleIDs{one}
	return nil
}

// UnmarshalYAML accepts a sequence or a single scalar. Scalars keep their
// source text, so 1e21 or 0o17 are not reformatted. The callback form is
// understood by both goccy/go-yaml and yaml.v3; each hands over its own
// node type.
func (ids *RoleIDs) UnmarshalYAML(unmarshal func(any) error) error {
	var node yamlv3.Node
	if err := unmarshal(&node); err == nil && node.Kind != 0 {
		list, err := rolesFromV3(&node)
		if err != nil {
			return err
		}
		*ids = list
		return nil
	}

	var src roleNode
	if err := unmarshal(&src); err != nil {
		return err
	}
	*ids = src.ids
	return nil
}

func rolesFromV3(n *yamlv3.Node) (RoleIDs, error) {
	if n.Kind == yamlv3.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind == yamlv3.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yamlv3.SequenceNode:
		list := make(RoleIDs, 0, len(n.Content))
		for _, item := range n.Content {
			id, err := roleFromV3(item)
			if err != nil {
				return nil, err
			}
			list = append(list, id)
		}
		return list, nil
	case yamlv3.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		id, err := roleFromV3(n)
		if err != nil {
			return nil, err
		}
		return RoleIDs{id}, nil
	default:
		return nil, fmt.Errorf("role_ids: expected scalar or list, line %d", n.Line)
	}
}

func roleFromV3(n *yamlv3.Node) (RoleID, error) {
	if n.Kind != yamlv3.ScalarNode {
		return RoleID{}, fmt.Errorf("role_ids: expected scalar item, line %d", n.Line)
	}
	switch n.ShortTag() {
	case "!!int", "!!float":
		return RoleID{ID: n.Value}, nil
	default:
		return RoleID{ID: n.Value, Quoted: true}, nil
	}
}

// roleNode decodes role ids from a goccy/go-yaml AST node.
type roleNode struct {
	ids RoleIDs
}

func (r *roleNode) UnmarshalYAML(node ast.Node) error {
	if tag, ok := node.(*ast.TagNode); ok {
		node = tag.Value
	}
	switch n := node.(type) {
	case *ast.NullNode:
		r.ids = nil
	case *ast.SequenceNode:
		list := make(RoleIDs, 0, len(n.Values))
		for _, item := range n.Values {
			id, err := roleFromAST(item)
			if err != nil {
				return err
			}
			list = append(list, id)
		}
		r.ids = list
	default:
		id, err := roleFromAST(node)
		if err != nil {
			return err
		}
		r.ids = RoleIDs{id}
	}
	return nil
}

func roleFromAST(node ast.Node) (RoleID, error) {
	if tag, ok := node.(*ast.TagNode); ok {
		node = tag.Value
	}
	switch n := node.(type) {
	case *ast.StringNode:
		return RoleID{ID: n.Value, Quoted: true}, nil
	case *ast.IntegerNode:
		return RoleID{ID: n.GetToken().Value}, nil
	case *ast.FloatNode:
		return RoleID{ID: n.GetToken().Value}, nil
	case ast.ScalarNode:
		if s, ok := n.GetValue().(string); ok {
			return RoleID{ID: s, Quoted: true}, nil
		}
		return RoleID{ID: n.GetToken().Value, Quoted: true}, nil
	default:
		return RoleID{}, fmt.Errorf("role_ids: expected scalar or list, got %s", node.Type())
	}
}
