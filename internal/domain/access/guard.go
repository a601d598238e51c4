package access

import "ems/internal/domain/session"

const (
	DefaultLoginPath   = "/login"
	DefaultLandingPath = "/"
)

// Guard decides whether a session may reach a protected view and where a
// denied navigation should land. Denial is a routine outcome, so the guard
// never returns an error.
type Guard struct {
	LoginPath   string
	LandingPath string
}

func NewGuard() Guard {
	return Guard{LoginPath: DefaultLoginPath, LandingPath: DefaultLandingPath}
}

// CanAccess reports whether the session satisfies the capability
// requirement. An empty requirement means any authenticated session.
func (g Guard) CanAccess(sess session.Session, required ...string) bool {
	if !sess.Authenticated {
		return false
	}
	if len(required) == 0 {
		return true
	}
	for _, role := range required {
		if sess.Role == role {
			return true
		}
	}
	return false
}

// RedirectTarget returns the path a denied navigation should be sent to and
// whether access was denied. Unauthenticated sessions go to the login entry
// point; authenticated sessions with the wrong role go to the landing view,
// never to an error page.
func (g Guard) RedirectTarget(sess session.Session, required ...string) (string, bool) {
	if g.CanAccess(sess, required...) {
		return "", false
	}
	if !sess.Authenticated {
		return g.LoginPath, true
	}
	return g.LandingPath, true
}
