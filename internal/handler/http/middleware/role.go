package middleware

import (
	"net/http"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/user"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/handler/http/response"
)

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := user.FromContext(r.Context())
		if !ok || u.Role != user.RoleManager {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireTeacher requires a teacher-role caller with a linked teacher record.
func RequireTeacher(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := user.FromContext(r.Context())
		if !ok || u.Role != user.RoleTeacher || u.TeacherID == nil {
			response.HandleError(w, user.ErrTeacherAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
