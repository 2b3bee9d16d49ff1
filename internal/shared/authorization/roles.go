package authorization

// AdminRole is the back-office role of an admin account.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
	RoleModerator  AdminRole = "moderator"
)

// AllRoles lists roles in descending privilege order.
var AllRoles = []AdminRole{RoleSuperAdmin, RoleAdmin, RoleModerator}

func (r AdminRole) String() string {
	return string(r)
}

func (r AdminRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

// ParseAdminRole falls back to the least privileged role for unknown input.
func ParseAdminRole(s string) AdminRole {
	role := AdminRole(s)
	if role.IsValid() {
		return role
	}
	return RoleModerator
}
