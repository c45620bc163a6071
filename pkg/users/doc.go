// Package users defines the records exchanged with an RBAC users
// directory: the stored User, the NewUser create payload, the Patch used to
// merge an update, and the Desired state handed to an ensure call.
//
// Role references are carried as RoleIDs, which decodes from either a single
// scalar or a list in both JSON and YAML so that callers can write
//
//	role_ids: 3
//
// and still send a one-element list to the directory.
package users
