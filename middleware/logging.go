package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

// RequestLogger logs one line per request. It sits outside the auth
// middleware, so the acting user is read straight from the bearer token
// when one is present.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		userID, role := "-", "-"
		if claims := claimsFromHeader(r); claims != nil {
			userID = claims.UserID
			role = claims.Role
		}
		log.Printf("[HTTP] %s %s user=%s role=%s ip=%s dur=%s",
			r.Method, r.URL.Path, userID, role, getClientIP(r), time.Since(start))
	})
}

func claimsFromHeader(r *http.Request) *Claims {
	auth := r.Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil
	}
	claims, err := ParseToken(parts[1])
	if err != nil {
		return nil
	}
	return claims
}

// Extracts client IP from headers or remote addr
func getClientIP(r *http.Request) string {
	// Priority: X-Forwarded-For → X-Real-IP → RemoteAddr
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return strings.Split(ip, ",")[0]
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
