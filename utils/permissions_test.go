package utils

import "testing"

func TestMatchesPermission(t *testing.T) {
	tests := []struct {
		name     string
		held     string
		required string
		want     bool
	}{
		{"exact match", "dispatch:approve", "dispatch:approve", true},
		{"full wildcard", "*:*:*", "dispatch:read", true},
		{"bare star", "*", "telebirr:approve", true},
		{"action wildcard", "dispatch:*", "dispatch:approve", true},
		{"action wildcard other action", "vehicle:*", "vehicle:maintain", true},
		{"resource wildcard", "*:read", "staff:read", true},
		{"resource mismatch", "dispatch:*", "vehicle:read", false},
		{"action mismatch", "dispatch:read", "dispatch:approve", false},
		{"resource wildcard wrong action", "*:read", "staff:delete", false},
		{"single part no match", "admin", "admin:read", false},
		{"empty held", "", "dispatch:read", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPermission(tt.held, tt.required); got != tt.want {
				t.Errorf("MatchesPermission(%q, %q) = %v, want %v", tt.held, tt.required, got, tt.want)
			}
		})
	}
}
