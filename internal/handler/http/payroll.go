package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/user"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Manager-side computation
	Preview(w http.ResponseWriter, r *http.Request)
	SaveDraft(w http.ResponseWriter, r *http.Request)
	RequestConfirmation(w http.ResponseWriter, r *http.Request)

	// Runs
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)

	// Worker side
	Confirm(w http.ResponseWriter, r *http.Request)
	ListMyRuns(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== COMPUTATION ==========

func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.SaveDraft(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll draft saved", result)
}

func (h *payrollHandlerImpl) RequestConfirmation(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.RequestConfirmation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll confirmation requested", result)
}

// ========== RUNS ==========

func (h *payrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	result, err := h.payrollService.GetRun(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	filter := payroll.RunFilter{
		Page:  parseIntQuery(r, "page", 1),
		Limit: parseIntQuery(r, "limit", 20),
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}
	if teacherID := r.URL.Query().Get("teacher_id"); teacherID != "" {
		filter.TeacherID = &teacherID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.payrollService.ListRuns(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	if err := h.payrollService.MarkPaid(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run marked paid", nil)
}

// ========== WORKER SIDE ==========

type confirmRunRequest struct {
	Note *string `json:"note,omitempty"`
}

func (h *payrollHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	// Body is optional; an empty confirm carries no note.
	var req confirmRunRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	result, err := h.payrollService.Confirm(r.Context(), id, req.Note)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll confirmed", result)
}

func (h *payrollHandlerImpl) ListMyRuns(w http.ResponseWriter, r *http.Request) {
	u, ok := user.FromContext(r.Context())
	if !ok || u.TeacherID == nil {
		response.HandleError(w, user.ErrTeacherAccessRequired)
		return
	}

	var month *string
	if m := r.URL.Query().Get("month"); m != "" {
		month = &m
	}

	result, err := h.payrollService.ListRunsForTeacher(r.Context(), *u.TeacherID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

func parseIntQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
