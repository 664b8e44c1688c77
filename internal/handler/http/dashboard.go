package http

import (
	"net/http"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/worktrack/attendance-backend-go/internal/handler/http/response"
	"github.com/worktrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/worktrack/attendance-backend-go/internal/pkg/validator"
)

type DashboardHandler interface {
	GetMonthlyStats(w http.ResponseWriter, r *http.Request)
	GetWeeklyHours(w http.ResponseWriter, r *http.Request)
	GetTeamDailyStats(w http.ResponseWriter, r *http.Request)
	GetTeamWeeklyTrend(w http.ResponseWriter, r *http.Request)
	GetTodayTeamAttendance(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	loc              *time.Location
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, loc *time.Location) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		loc:              loc,
	}
}

// GetMonthlyStats implements DashboardHandler. Month defaults to the
// current month in the configured zone when the query parameter is
// absent.
func (h *dashboardHandlerImpl) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	req := dashboard.MonthlyStatsRequest{Month: r.URL.Query().Get("month")}
	if req.Month == "" {
		req.Month = time.Now().In(h.loc).Format("2006-01")
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetMonthlyStats(r.Context(), userID, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeeklyHours implements DashboardHandler.
func (h *dashboardHandlerImpl) GetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.dashboardService.GetWeeklyHours(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamDailyStats implements DashboardHandler. Date defaults to today.
func (h *dashboardHandlerImpl) GetTeamDailyStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
	}

	result, err := h.dashboardService.GetTeamDailyStats(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamWeeklyTrend implements DashboardHandler.
func (h *dashboardHandlerImpl) GetTeamWeeklyTrend(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetTeamWeeklyTrend(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTodayTeamAttendance implements DashboardHandler.
func (h *dashboardHandlerImpl) GetTodayTeamAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetTodayTeamAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
