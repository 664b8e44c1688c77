package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worktrack/attendance-backend-go/internal/config"
	"github.com/worktrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/worktrack/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
	historyHandler HistoryHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
		// Everything requires authentication; sessions are issued by the
		// identity collaborator.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", userHandler.GetMe)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.GetToday)
				r.Get("/recent", attendanceHandler.GetRecent)
				r.Get("/calendar", historyHandler.GetCalendarView)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/monthly-stats", dashboardHandler.GetMonthlyStats)
				r.Get("/weekly-hours", dashboardHandler.GetWeeklyHours)
			})

			// Manager only
			r.Route("/team", func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Get("/daily-stats", dashboardHandler.GetTeamDailyStats)
				r.Get("/weekly-trend", dashboardHandler.GetTeamWeeklyTrend)
				r.Get("/today", dashboardHandler.GetTodayTeamAttendance)
				r.Get("/attendance", reportHandler.ListTeamAttendance)
				r.Get("/attendance/export", reportHandler.ExportCSV)
			})
		})
	})
	return r
}
