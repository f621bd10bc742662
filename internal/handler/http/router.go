package http

import (
	"log/slog"
	"os"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/config"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/handler/http/middleware"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	worklogHandler WorkLogHandler,
	teacherHandler TeacherHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "campus-payroll"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				// Manager-side computation and run management
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/preview", payrollHandler.Preview)
					r.Post("/draft", payrollHandler.SaveDraft)
					r.Post("/request-confirmation", payrollHandler.RequestConfirmation)
					r.Get("/runs", payrollHandler.ListRuns)
					r.Post("/runs/{id}/mark-paid", payrollHandler.MarkPaid)
				})

				// Run detail is shared: managers see everything, teachers
				// only their own runs (enforced in the service).
				r.Get("/runs/{id}", payrollHandler.GetRun)
				r.Post("/runs/{id}/confirm", payrollHandler.Confirm)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireTeacher)
					r.Get("/my/runs", payrollHandler.ListMyRuns)
				})
			})

			r.Route("/work-logs", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/external-ledger", worklogHandler.ListExternalLedger)
				r.Patch("/{id}/external-pay-status", worklogHandler.UpdateExternalPayStatus)
			})

			r.Route("/teachers", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", teacherHandler.ListActive)
				r.Get("/{id}", teacherHandler.GetByID)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Post("/mark-read", notificationHandler.MarkAsRead)
			})
		})
	})

	return r
}
