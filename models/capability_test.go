package models

import "testing"

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required string
		want     bool
	}{
		{"gm does everything", RoleGeneralManager, "staff:delete", true},
		{"inspector creates dispatches", RoleQualityInspector, "dispatch:create", true},
		{"inspector submits", RoleQualityInspector, "dispatch:submit", true},
		{"inspector cannot approve", RoleQualityInspector, "dispatch:approve", false},
		{"dispatch manager approves", RoleDispatchManager, "dispatch:approve", true},
		{"mechanic maintains", RoleMechanic, "vehicle:maintain", true},
		{"mechanic cannot delete vehicles", RoleMechanic, "vehicle:delete", false},
		{"telebirr supervisor approves ledger", RoleTelebirrSupervisor, "telebirr:approve", true},
		{"sales agent records entries", RoleSalesAgent, "telebirr:create", true},
		{"sales agent cannot approve own entries", RoleSalesAgent, "telebirr:approve", false},
		{"fleet supervisor exports", RoleFleetSupervisor, "export:read", true},
		{"marketing reads only", RoleMarketingTeam, "dispatch:update", false},
		{"unknown role holds nothing", "intern", "dashboard:read", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleAllowed(tt.role, tt.required); got != tt.want {
				t.Errorf("RoleAllowed(%q, %q) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}

func TestEveryRoleHasCapabilities(t *testing.T) {
	for role := range RoleHierarchy {
		if len(RoleCapabilities[role]) == 0 {
			t.Errorf("role %q has no capabilities", role)
		}
	}
}
