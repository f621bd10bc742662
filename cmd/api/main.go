package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/config"
	appHTTP "github.com/filmsfather/woodiefilmcampus-payroll/internal/handler/http"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/database"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/jwt"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/repository/postgresql"
	notificationService "github.com/filmsfather/woodiefilmcampus-payroll/internal/service/notification"
	payrollService "github.com/filmsfather/woodiefilmcampus-payroll/internal/service/payroll"
	teacherService "github.com/filmsfather/woodiefilmcampus-payroll/internal/service/teacher"
	worklogService "github.com/filmsfather/woodiefilmcampus-payroll/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	teacherRepo := postgresql.NewTeacherRepository(db)
	worklogRepo := postgresql.NewWorkLogRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	notificationSvc := notificationService.NewNotificationService(notificationRepo, notificationService.Config{})
	defer notificationSvc.Stop()

	teacherSvc := teacherService.NewTeacherService(teacherRepo)
	worklogSvc := worklogService.NewWorkLogService(worklogRepo, cfg)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, worklogRepo, teacherRepo, notificationSvc, db, cfg)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	worklogHandler := appHTTP.NewWorkLogHandler(worklogSvc)
	teacherHandler := appHTTP.NewTeacherHandler(teacherSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(cfg, jwtService, payrollHandler, worklogHandler, teacherHandler, notificationHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("payroll API listening on :%d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
