package utils

import "strings"

// MatchesPermission checks if a held capability matches the required one.
// Capability format is "resource:action" with wildcard support:
//
//   - "*:*:*" or "*" matches everything (General Manager wildcard)
//   - "dispatch:*" matches every action on dispatch records
//   - "*:read" matches the read action on every resource
//   - "dispatch:approve" exact match
//
// New capabilities can be granted by extending a role's list; no call
// sites change.
func MatchesPermission(heldPerm, requiredPerm string) bool {
	// Exact match (fastest path)
	if heldPerm == requiredPerm {
		return true
	}

	// Full wildcard - grants everything
	if heldPerm == "*:*:*" || heldPerm == "*" {
		return true
	}

	heldParts := strings.Split(heldPerm, ":")
	reqParts := strings.Split(requiredPerm, ":")

	// Single-part capabilities only ever match exactly
	if len(heldParts) < 2 || len(reqParts) < 2 {
		return heldPerm == requiredPerm
	}

	resourceMatch := heldParts[0] == "*" || heldParts[0] == reqParts[0]
	actionMatch := heldParts[1] == "*" || heldParts[1] == reqParts[1]

	return resourceMatch && actionMatch
}
