package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/worktrack/attendance-backend-go/internal/config"
	appHTTP "github.com/worktrack/attendance-backend-go/internal/handler/http"
	"github.com/worktrack/attendance-backend-go/internal/pkg/cron"
	"github.com/worktrack/attendance-backend-go/internal/pkg/database"
	"github.com/worktrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/worktrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worktrack/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/worktrack/attendance-backend-go/internal/service/dashboard"
	historyService "github.com/worktrack/attendance-backend-go/internal/service/history"
	reportService "github.com/worktrack/attendance-backend-go/internal/service/report"
	userService "github.com/worktrack/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc := cfg.Location()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc, err := attendanceService.NewAttendanceService(attendanceRepo, cfg.Attendance.WorkStart, loc)
	if err != nil {
		log.Fatal("Failed to initialize attendance service:", err)
	}
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, userRepo, loc)
	historySvc := historyService.NewHistoryService(attendanceRepo, loc)
	reportSvc := reportService.NewReportService(attendanceRepo, loc)
	userSvc := userService.NewUserService(userRepo, profileRepo)

	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, loc)
	historyHandler := appHTTP.NewHistoryHandler(historySvc, loc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, loc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		userHandler,
		attendanceHandler,
		dashboardHandler,
		historyHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, userRepo, loc).RegisterJobs(scheduler)
	scheduler.Start()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
	_ = server.Close()
}
