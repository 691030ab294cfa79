package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/wagedesk/payroll-backend-go/internal/handler/http/middleware"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	employeeHandler EmployeeHandler,
	calendarHandler CalendarHandler,
	attendanceHandler AttendanceHandler,
	loanHandler LoanHandler,
	advanceHandler AdvanceHandler,
	payrollHandler PayrollHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wagedesk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/", calendarHandler.ListDays)
				r.Put("/", calendarHandler.UpsertDay)
				r.Delete("/{id}", calendarHandler.DeleteDay)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Post("/", attendanceHandler.Create)
				r.Get("/summary", attendanceHandler.GetSummary)
				r.Get("/{id}", attendanceHandler.Get)
				r.Put("/{id}", attendanceHandler.Update)
				r.Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Get("/", loanHandler.List)
				r.Post("/", loanHandler.Create)
				r.Get("/{id}", loanHandler.Get)
				r.Put("/{id}/status", loanHandler.UpdateStatus)
				r.Get("/{id}/repayments", loanHandler.GetRepayments)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", advanceHandler.List)
				r.Post("/", advanceHandler.Create)
				r.Get("/{id}", advanceHandler.Get)
				r.Put("/{id}/status", advanceHandler.UpdateStatus)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRecords)
				r.Post("/compute", payrollHandler.ComputeDraft)
				r.Get("/{id}", payrollHandler.GetRecord)
				r.Put("/{id}", payrollHandler.OverrideRecord)
				r.Post("/{id}/finalize", payrollHandler.Finalize)
				r.Delete("/{id}", payrollHandler.DeleteRecord)
			})
		})
	})
	return r
}
