package middleware

import (
	"net/http"
	"strings"

	"ems/internal/domain/access"
	"ems/internal/transport/http/api"
)

// Protect enforces the capability requirement on every navigation. API
// clients get envelope errors; browser navigations get the guard's
// redirect targets, never an error page.
func Protect(guard access.Guard, required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSession(r.Context())
			target, denied := guard.RedirectTarget(sess, required...)
			if !denied {
				next.ServeHTTP(w, r)
				return
			}

			if wantsJSON(r) {
				if !sess.Authenticated {
					api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
					return
				}
				api.Fail(w, http.StatusForbidden, "forbidden", "insufficient role", GetRequestID(r.Context()))
				return
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
		})
	}
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/json") {
		return true
	}
	// API routes default to JSON even without an Accept header.
	return strings.HasPrefix(r.URL.Path, "/api/")
}
