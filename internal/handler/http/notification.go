package http

import (
	"encoding/json"
	"net/http"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/notification"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/user"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{notificationService: notificationService}
}

// List returns the caller's notifications. Teacher-role callers are keyed by
// their teacher record, managers by their user id.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	u, ok := user.FromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrInvalidToken)
		return
	}

	page := parseIntQuery(r, "page", 1)
	pageSize := parseIntQuery(r, "page_size", 20)
	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	result, err := h.notificationService.GetNotifications(r.Context(), recipientID(u), page, pageSize, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	u, ok := user.FromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrInvalidToken)
		return
	}

	var req notification.MarkAsReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.notificationService.MarkAsRead(r.Context(), recipientID(u), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications marked as read", nil)
}

func recipientID(u user.Context) string {
	if u.TeacherID != nil {
		return *u.TeacherID
	}
	return u.UserID
}
