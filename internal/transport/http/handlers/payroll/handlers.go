package payrollhandler

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/access"
	"ems/internal/domain/directory"
	"ems/internal/domain/payroll"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Service   *payroll.Service
	Directory *directory.Store
	Guard     access.Guard
}

func NewHandler(service *payroll.Service, dir *directory.Store, guard access.Guard) *Handler {
	return &Handler{Service: service, Directory: dir, Guard: guard}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.Protect(h.Guard))
		r.Get("/breakdown", h.handleBreakdown)
		r.Get("/history", h.handleHistory)
		r.Get("/payslip", h.handlePayslip)
	})
}

func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	breakdown, err := h.Service.Breakdown(emp.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, breakdown, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	api.Success(w, h.Service.History(emp.ID), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	slip, err := h.Service.Payslip(emp.ID, emp.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := payroll.RenderPDF(&buf, slip); err != nil {
		h.fail(w, r, err)
		return
	}
	filename := "payslip-" + strings.ReplaceAll(strings.ToLower(slip.Month), " ", "-") + ".pdf"
	api.Download(w, "application/pdf", filename, buf.Bytes())
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

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, payroll.ErrZeroWorkingDays):
		api.Fail(w, http.StatusBadRequest, "zero_working_days", err.Error(), reqID)
	case errors.Is(err, payroll.ErrValidation):
		api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "payroll derivation failed", reqID)
	}
}
