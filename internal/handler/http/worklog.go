package http

import (
	"encoding/json"
	"net/http"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/worklog"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkLogHandler interface {
	ListExternalLedger(w http.ResponseWriter, r *http.Request)
	UpdateExternalPayStatus(w http.ResponseWriter, r *http.Request)
}

type workLogHandlerImpl struct {
	worklogService worklog.Service
}

func NewWorkLogHandler(worklogService worklog.Service) WorkLogHandler {
	return &workLogHandlerImpl{worklogService: worklogService}
}

func (h *workLogHandlerImpl) ListExternalLedger(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.worklogService.ListExternalLedger(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workLogHandlerImpl) UpdateExternalPayStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	var req worklog.UpdateExternalPayStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.worklogService.UpdateExternalPayStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "External pay status updated", result)
}
