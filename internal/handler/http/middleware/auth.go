package middleware

import (
	"net/http"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/user"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid access token and attaches
// the authenticated caller to the request context for downstream handlers
// and services.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}
			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			u := user.Context{UserID: userID, Role: user.Role(roleStr)}
			if teacherID, ok := claims["teacher_id"].(string); ok && teacherID != "" {
				u.TeacherID = &teacherID
			}

			next.ServeHTTP(w, r.WithContext(user.WithContext(r.Context(), u)))
		}
		return http.HandlerFunc(hfn)
	}
}
