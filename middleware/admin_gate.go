package middleware

import (
	"net/http"
)

// AdminGateMiddleware protects the admin area. Beyond a valid session,
// the caller must present the admin-scope token minted by the access
// code verification endpoint in the X-Admin-Token header. The access
// code itself never travels past that endpoint.
func AdminGateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := GetClaims(r)
		if session == nil {
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}

		adminToken := r.Header.Get("X-Admin-Token")
		if adminToken == "" {
			http.Error(w, "admin verification required", http.StatusForbidden)
			return
		}

		claims, err := ParseToken(adminToken)
		if err != nil || claims.Scope != ScopeAdmin {
			http.Error(w, "invalid or expired admin token", http.StatusForbidden)
			return
		}
		// The admin token must belong to the logged-in session.
		if claims.UserID != session.UserID {
			http.Error(w, "admin token does not match session", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
