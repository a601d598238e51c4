package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/access"
	"ems/internal/domain/directory"
	"ems/internal/domain/leave"
	"ems/internal/domain/session"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service   *leave.Service
	Directory *directory.Store
	Guard     access.Guard
}

func NewHandler(service *leave.Service, dir *directory.Store, guard access.Guard) *Handler {
	return &Handler{Service: service, Directory: dir, Guard: guard}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Use(middleware.Protect(h.Guard))
		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleSubmitRequest)
		r.Get("/requests/{requestID}", h.handleGetRequest)
		r.With(middleware.Protect(h.Guard, session.RoleAdmin, session.RoleTeamLead)).
			Post("/requests/{requestID}/approve", h.handleApproveRequest)
		r.With(middleware.Protect(h.Guard, session.RoleAdmin, session.RoleTeamLead)).
			Post("/requests/{requestID}/reject", h.handleRejectRequest)
		r.Get("/balances", h.handleBalances)
		r.Get("/calendar", h.handleCalendar)
	})
}

type submitPayload struct {
	Type   string  `json:"type"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Days   float64 `json:"days"`
	Reason string  `json:"reason"`
}

func (h *Handler) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	startDate, err := shared.ParseDate(payload.From)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_dates", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	endDate, err := shared.ParseDate(payload.To)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_dates", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	req, err := h.Service.Submit(leave.SubmitInput{
		RequesterID: h.requesterID(sess),
		Type:        payload.Type,
		StartDate:   startDate,
		EndDate:     endDate,
		Days:        payload.Days,
		Reason:      payload.Reason,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Created(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	// Employees see their own requests; approvers see everyone's.
	requesterID := ""
	if sess.Role == session.RoleEmployee {
		requesterID = h.requesterID(sess)
	}
	api.Success(w, h.Service.List(requesterID), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.Service.Get(chi.URLParam(r, "requestID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	sess := middleware.GetSession(r.Context())
	if sess.Role == session.RoleEmployee && req.RequesterID != h.requesterID(sess) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not your leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	req, err := h.Service.Approve(chi.URLParam(r, "requestID"), sess.Role)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	req, err := h.Service.Reject(chi.URLParam(r, "requestID"), sess.Role)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBalances(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	api.Success(w, h.Service.Balances(h.requesterID(sess)), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Calendar(), middleware.GetRequestID(r.Context()))
}

// requesterID joins the session identity to the directory. Unknown names
// fall back to the display name so demo sessions still work.
func (h *Handler) requesterID(sess session.Session) string {
	if emp, ok := h.Directory.FindByName(sess.Name); ok {
		return emp.ID
	}
	return sess.Name
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, leave.ErrValidation):
		api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), reqID)
	case errors.Is(err, leave.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", err.Error(), reqID)
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), reqID)
	case errors.Is(err, leave.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "leave_failed", "leave operation failed", reqID)
	}
}
