package policy

import (
	"filestorage_backend/internals/constants"
)

// Decision is the result of an access-control check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Caller is the identity resolved from a validated bearer token.
type Caller struct {
	UserID uint64
	Role   string
}

func (c Caller) IsAdmin() bool {
	return c.Role == constants.RoleAdmin
}

func (c Caller) IsAdminOrModerator() bool {
	return c.Role == constants.RoleAdmin || c.Role == constants.RoleModerator
}

// CanRead decides visibility of a row owned by ownerUserID.
// Admins and moderators read everything; a USER reads only their own rows.
func CanRead(caller Caller, ownerUserID uint64) Decision {
	if caller.IsAdminOrModerator() {
		return Allow
	}
	if caller.UserID == ownerUserID {
		return Allow
	}
	return Deny
}

// CanMutate decides scoped update/delete rights. Only admins and moderators
// may mutate files and events; ownership does not grant mutation.
func CanMutate(caller Caller) Decision {
	if caller.IsAdminOrModerator() {
		return Allow
	}
	return Deny
}

// CanBulkDelete decides destructive delete-all rights. Admin only.
func CanBulkDelete(caller Caller) Decision {
	if caller.IsAdmin() {
		return Allow
	}
	return Deny
}

// ScopeUserID returns the user id a listing must be filtered to, or 0 for an
// unfiltered listing. A USER caller is always pinned to their own id, no
// matter what filter the request carries.
func ScopeUserID(caller Caller, requested uint64) uint64 {
	if caller.IsAdminOrModerator() {
		return requested
	}
	return caller.UserID
}
