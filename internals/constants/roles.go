package constants

import "fmt"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r string) bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}
