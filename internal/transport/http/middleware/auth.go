package middleware

import (
	"net/http"
	"strings"

	"ems/internal/domain/session"
)

// Auth resolves the bearer token to a live session on every request. The
// registry is the source of truth: a valid token whose session was logged
// out resolves to unauthenticated. Requests without a token pass through
// unauthenticated and are stopped later by the guard where required.
func Auth(secret string, registry *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := session.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			sess, ok := registry.Current(claims.SessionID)
			if !ok || !sess.Authenticated {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), claims.SessionID, sess)))
		})
	}
}
