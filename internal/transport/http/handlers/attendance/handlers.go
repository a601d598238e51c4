package attendancehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/access"
	"ems/internal/domain/attendance"
	"ems/internal/domain/directory"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Store     *attendance.Store
	Directory *directory.Store
	Guard     access.Guard
}

func NewHandler(store *attendance.Store, dir *directory.Store, guard access.Guard) *Handler {
	return &Handler{Store: store, Directory: dir, Guard: guard}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.Protect(h.Guard))
		r.Get("/", h.handleList)
		r.Get("/summary", h.handleSummary)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	api.Success(w, h.Store.List(emp.ID), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	latest, found := h.Store.Latest(emp.ID)
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "no attendance summary recorded", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, latest, middleware.GetRequestID(r.Context()))
}

func (h *Handler) currentEmployee(w http.ResponseWriter, r *http.Request) (directory.Employee, bool) {
	sess := middleware.GetSession(r.Context())
	emp, ok := h.Directory.FindByName(sess.Name)
	if !ok {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "no employee record for current session", middleware.GetRequestID(r.Context()))
		return directory.Employee{}, false
	}
	return emp, true
}
