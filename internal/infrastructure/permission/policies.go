package permission

import "github.com/scamguard-vn/scamguard/internal/shared/authorization"

// DefaultPolicies returns the built-in role grants. Higher roles inherit
// everything below them through RoleInheritance.
func DefaultPolicies() [][]string {
	moderator := authorization.RoleModerator.String()
	admin := authorization.RoleAdmin.String()
	superAdmin := authorization.RoleSuperAdmin.String()

	return [][]string{
		{moderator, ResourceReport, ActionRead},
		{moderator, ResourceReport, ActionUpdate},
		{moderator, ResourceChat, ActionRead},
		{moderator, ResourceChat, ActionUpdate},
		{moderator, ResourceAnalytics, ActionRead},
		{moderator, ResourceBlog, ActionRead},
		{moderator, ResourceCategory, ActionRead},
		{moderator, ResourceScam, ActionRead},

		{admin, ResourceReport, "*"},
		{admin, ResourceBlog, "*"},
		{admin, ResourceCategory, "*"},
		{admin, ResourceChat, "*"},
		{admin, ResourceBroadcast, "*"},
		{admin, ResourceScam, "*"},
		{admin, ResourceSetting, ActionRead},

		{superAdmin, "*", "*"},
	}
}

// RoleInheritance returns grouping rules as (member, parent) pairs.
func RoleInheritance() [][]string {
	return [][]string{
		{authorization.RoleSuperAdmin.String(), authorization.RoleAdmin.String()},
		{authorization.RoleAdmin.String(), authorization.RoleModerator.String()},
	}
}
