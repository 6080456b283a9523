package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	assessmentHandler AssessmentHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Post("/breaks/start", attendanceHandler.StartBreak)
				r.Post("/breaks/end", attendanceHandler.EndBreak)
				r.Get("/me", attendanceHandler.GetMySessions)

				// Manager and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", attendanceHandler.List)
					r.Get("/{id}", attendanceHandler.Get)
					r.Put("/{id}", attendanceHandler.Update)
				})
			})

			r.Route("/assessment-cycles", func(r chi.Router) {
				r.Get("/", assessmentHandler.ListCycles)
				r.Get("/{id}", assessmentHandler.GetCycle)
				r.Get("/{id}/progress", assessmentHandler.GetCycleProgress)

				// HR and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", assessmentHandler.CreateCycle)
					r.Post("/{id}/start", assessmentHandler.StartCycle)
					r.Post("/{id}/complete", assessmentHandler.CompleteCycle)
					r.Post("/{id}/cancel", assessmentHandler.CancelCycle)
				})
			})

			r.Route("/assessments", func(r chi.Router) {
				r.Get("/me", assessmentHandler.GetMyAssessments)
				r.Post("/{id}/submit", assessmentHandler.Submit)

				// HR and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", assessmentHandler.List)
					r.Post("/", assessmentHandler.Assign)
					r.Post("/{id}/approve", assessmentHandler.Approve)
					r.Post("/{id}/reject", assessmentHandler.Reject)
					r.Put("/{id}/deadline", assessmentHandler.ExtendDeadline)
					r.Put("/{id}/assessor", assessmentHandler.Reassign)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)

				// Manager and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", leaveHandler.List)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/missing-clock-ins", reportHandler.MissingClockIns)
				r.Get("/break-violations", reportHandler.BreakViolations)
			})
		})
	})
	return r
}
