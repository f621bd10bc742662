package http

import (
	"net/http"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/teacher"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TeacherHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type teacherHandlerImpl struct {
	teacherService teacher.Service
}

func NewTeacherHandler(teacherService teacher.Service) TeacherHandler {
	return &teacherHandlerImpl{teacherService: teacherService}
}

func (h *teacherHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.teacherService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *teacherHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	result, err := h.teacherService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
