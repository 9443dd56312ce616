package middleware

import (
	"net/http"

	"lgs.et/fleet/models"
)

// RequireCapability gates a handler on the role capability map. The
// check happens once here at the route boundary; handlers never compare
// role strings themselves.
func RequireCapability(capability string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := GetRole(r)
		if role == "" {
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		if !models.RoleAllowed(role, capability) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
