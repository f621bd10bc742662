package response

import (
	"errors"
	"net/http"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/notification"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/teacher"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/user"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/worklog"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrTeacherAccessRequired):
		Forbidden(w, "Teacher access required")

	// Teacher directory errors
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoActiveProfile):
		NotFound(w, "No active payroll profile for this teacher and period")
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrAckNotFound):
		NotFound(w, "No confirmation has been requested for this run")
	case errors.Is(err, payroll.ErrRunNotConfirmed):
		Conflict(w, "Payroll run has not been confirmed")
	case errors.Is(err, payroll.ErrRunAlreadyPaid):
		Conflict(w, "Payroll run is already paid")
	case errors.Is(err, payroll.ErrAckNotPending):
		Conflict(w, "Confirmation is not pending")

	// Work log domain errors
	case errors.Is(err, worklog.ErrEntryNotFound):
		NotFound(w, "Work log entry not found")
	case errors.Is(err, worklog.ErrNotExternalSubstitute):
		Conflict(w, "Entry is not an external substitute record")
	case errors.Is(err, worklog.ErrInvalidPayStatus):
		BadRequest(w, "Invalid pay status", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
