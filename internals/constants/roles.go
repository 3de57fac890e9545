package constants

import "fmt"

// Role error message templates
const (
	ErrOnlyAdminsCanAccess     = "Only admins may access %s."
	ErrOnlyModeratorsCanAccess = "Only admins or moderators may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorModerator(feature string) string {
	return fmt.Sprintf(ErrOnlyModeratorsCanAccess, feature)
}

// ==========================
// Role constants
// ==========================
const (
	RoleUser      = "USER"
	RoleModerator = "MODERATOR"
	RoleAdmin     = "ADMIN"
)

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleModerator,
		RoleAdmin,
	}

	ModeratorAndAbove = []string{
		RoleModerator,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
