package models

import "lgs.et/fleet/utils"

// RoleCapabilities maps each staff role to the operations it may
// perform, in resource:action form. Authorization is a single lookup at
// the route boundary rather than string comparisons scattered through
// handlers. Patterns support the usual wildcards ("dispatch:*", "*:read").
var RoleCapabilities = map[string][]string{
	RoleGeneralManager: {"*:*:*"},
	RoleFleetSupervisor: {
		"vehicle:*", "dispatch:read", "staff:read", "dashboard:read", "export:read",
	},
	RoleTelebirrSupervisor: {
		"telebirr:*", "staff:read", "dashboard:read", "export:read",
	},
	RoleDispatchManager: {
		"dispatch:*", "vehicle:read", "staff:read", "dashboard:read", "export:read",
	},
	RoleQualityInspector: {
		"dispatch:create", "dispatch:read", "dispatch:update", "dispatch:submit",
		"vehicle:read", "file:create",
	},
	RoleSalesAgent: {
		"telebirr:create", "telebirr:read", "dashboard:read",
	},
	RoleMechanic: {
		"vehicle:read", "vehicle:maintain",
	},
	RoleMarketingTeam: {
		"vehicle:read", "dispatch:read", "dashboard:read",
	},
}

// RoleAllowed reports whether role holds a capability matching required.
func RoleAllowed(role, required string) bool {
	for _, cap := range RoleCapabilities[role] {
		if utils.MatchesPermission(cap, required) {
			return true
		}
	}
	return false
}
