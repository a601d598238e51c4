package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ems/internal/domain/access"
	"ems/internal/domain/session"
)

func guardedHandler(required ...string) http.Handler {
	guard := access.Guard{LoginPath: "/login", LandingPath: "/"}
	return Protect(guard, required...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func requestWithSession(path string, sess session.Session) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if sess.Authenticated {
		r = r.WithContext(withSession(r.Context(), "sess-1", sess))
	}
	return r
}

func TestProtectRedirectsBrowserToLogin(t *testing.T) {
	rec := httptest.NewRecorder()
	guardedHandler().ServeHTTP(rec, requestWithSession("/dashboard", session.Session{}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestProtectRedirectsBrowserToLandingOnRoleMismatch(t *testing.T) {
	sess := session.Session{Role: session.RoleEmployee, Name: "John Doe", Authenticated: true}
	rec := httptest.NewRecorder()
	guardedHandler(session.RoleAdmin).ServeHTTP(rec, requestWithSession("/employees", sess))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to landing, got %q", loc)
	}
}

func TestProtectReturnsEnvelopesForAPIClients(t *testing.T) {
	rec := httptest.NewRecorder()
	guardedHandler().ServeHTTP(rec, requestWithSession("/api/v1/leave/requests", session.Session{}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on api path, got %d", rec.Code)
	}

	sess := session.Session{Role: session.RoleEmployee, Name: "John Doe", Authenticated: true}
	rec = httptest.NewRecorder()
	req := requestWithSession("/dashboard", sess)
	req.Header.Set("Accept", "application/json")
	guardedHandler(session.RoleAdmin).ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for json client, got %d", rec.Code)
	}
}

func TestProtectAllowsMatchingRole(t *testing.T) {
	sess := session.Session{Role: session.RoleTeamLead, Name: "Team Lead User", Authenticated: true}
	rec := httptest.NewRecorder()
	guardedHandler(session.RoleAdmin, session.RoleTeamLead).ServeHTTP(rec, requestWithSession("/employees", sess))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	handler := RateLimit(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Burst of 1 at 4 requests per minute; the second immediate request
	// must be rejected.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leave/requests", nil)
	req.RemoteAddr = "203.0.113.9:51000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on burst exhaustion, got %d", rec.Code)
	}
}

func TestRateLimitKeysClientsSeparately(t *testing.T) {
	handler := RateLimit(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/api/v1/leave/requests", nil)
	first.RemoteAddr = "203.0.113.9:51000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodGet, "/api/v1/leave/requests", nil)
	second.RemoteAddr = "198.51.100.7:51000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected a different client to pass, got %d", rec.Code)
	}
}
