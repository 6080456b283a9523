package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/workstream-hr/workforce-backend-go/internal/config"
	appHTTP "github.com/workstream-hr/workforce-backend-go/internal/handler/http"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/cron"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/email"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/oauth"
	"github.com/workstream-hr/workforce-backend-go/internal/repository/postgresql"
	assessmentService "github.com/workstream-hr/workforce-backend-go/internal/service/assessment"
	attendanceService "github.com/workstream-hr/workforce-backend-go/internal/service/attendance"
	serviceAuth "github.com/workstream-hr/workforce-backend-go/internal/service/auth"
	employeeService "github.com/workstream-hr/workforce-backend-go/internal/service/employee"
	leaveService "github.com/workstream-hr/workforce-backend-go/internal/service/leave"
	reminderService "github.com/workstream-hr/workforce-backend-go/internal/service/reminder"
	reportService "github.com/workstream-hr/workforce-backend-go/internal/service/report"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewAttendanceSessionRepository(db)
	cycleRepo := postgresql.NewAssessmentCycleRepository(db)
	assessmentRepo := postgresql.NewCompetencyAssessmentRepository(db)
	competencyRepo := postgresql.NewCompetencyRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reminderLogRepo := postgresql.NewReminderLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := serviceAuth.NewAuthService(db, userRepo, jwtService, googleService)
	sessionSvc := attendanceService.NewSessionService(db, cfg.App.Location, sessionRepo)
	cycleSvc := assessmentService.NewCycleService(db, cfg.App.Location, cycleRepo, assessmentRepo)
	assessmentSvc := assessmentService.NewAssessmentService(db, cfg.App.Location, assessmentRepo, cycleRepo, competencyRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	reportSvc := reportService.NewReportService(db, cfg.App.Location, employeeRepo, sessionRepo)
	reminderSvc := reminderService.NewReminderService(
		db,
		cfg.App.Location,
		emailService,
		reminderLogRepo,
		employeeRepo,
		sessionRepo,
		assessmentRepo,
		cycleRepo,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(sessionSvc)
	assessmentHandler := appHTTP.NewAssessmentHandler(cycleSvc, assessmentSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		assessmentHandler,
		leaveHandler,
		employeeHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewReminderJobs(reminderSvc, cfg.App.Location).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error: ", err)
	}
}
