package directoryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/access"
	"ems/internal/domain/directory"
	"ems/internal/domain/session"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Store *directory.Store
	Guard access.Guard
}

func NewHandler(store *directory.Store, guard access.Guard) *Handler {
	return &Handler{Store: store, Guard: guard}
}

// The employees view is reserved for admins and team leads, matching the
// portal's navigation rules.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.Protect(h.Guard, session.RoleAdmin, session.RoleTeamLead))
		r.Get("/", h.handleList)
		r.Get("/{employeeID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.List(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.Store.Get(chi.URLParam(r, "employeeID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}
