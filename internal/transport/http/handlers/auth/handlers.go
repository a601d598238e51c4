package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/session"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Secret   string
	TTL      time.Duration
	Sessions *session.Registry
}

func NewHandler(secret string, ttl time.Duration, sessions *session.Registry) *Handler {
	return &Handler{Secret: secret, TTL: ttl, Sessions: sessions}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/logout", h.HandleLogout)
	r.Get("/auth/session", h.HandleSession)
}

type loginPayload struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session session.Session `json:"session"`
}

// HandleLogin establishes a session for the asserted role. Identity
// verification is delegated to an upstream collaborator; this endpoint
// only records who the caller claims to be.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Name == "" {
		payload.Name = defaultDisplayName(payload.Role)
	}

	id, sess, err := h.Sessions.Create(payload.Role, payload.Name)
	if err != nil {
		if errors.Is(err, session.ErrUnknownRole) {
			api.Fail(w, http.StatusBadRequest, "unknown_role", "role must be admin, team_lead or employee", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to establish session", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := session.NewToken(h.Secret, id, sess, h.TTL)
	if err != nil {
		h.Sessions.Logout(id)
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to issue session token", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, loginResponse{Token: token, Session: sess}, middleware.GetRequestID(r.Context()))
}

// HandleLogout is idempotent: logging out an already-dead session still
// succeeds.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if id := middleware.GetSessionID(r.Context()); id != "" {
		h.Sessions.Logout(id)
	}
	api.Success(w, map[string]string{"status": "logged_out"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	api.Success(w, middleware.GetSession(r.Context()), middleware.GetRequestID(r.Context()))
}

func defaultDisplayName(role string) string {
	switch role {
	case session.RoleAdmin:
		return "Admin User"
	case session.RoleTeamLead:
		return "Team Lead User"
	default:
		return "John Doe"
	}
}
