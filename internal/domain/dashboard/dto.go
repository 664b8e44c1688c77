package dashboard

import (
	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/pkg/validator"
)

// ========== EMPLOYEE SIDE ==========

// MonthlyStatsResponse is a per-user rollup over one calendar month.
// Zero records yield an all-zero rollup, never an error.
type MonthlyStatsResponse struct {
	Month      string  `json:"month"` // YYYY-MM
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	TotalHours float64 `json:"total_hours"`
}

// WeeklyHoursResponse is one user's worked hours per day over the past
// seven days. Days without a settled record contribute zero.
type WeeklyHoursResponse struct {
	Days []DailyHoursItem `json:"days"`
}

type DailyHoursItem struct {
	Date    string  `json:"date"`     // YYYY-MM-DD
	DayName string  `json:"day_name"` // "Mon", "Tue", ...
	Hours   float64 `json:"hours"`
}

// ========== TEAM SIDE ==========

// TeamDailyStatsResponse summarises one day across the whole team.
// AbsentToday is inferred: employees without a record for the date count
// as absent, whether or not an absence was ever materialized.
type TeamDailyStatsResponse struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	PresentToday   int    `json:"present_today"`
	AbsentToday    int    `json:"absent_today"`
	LateToday      int    `json:"late_today"`
}

// TeamWeeklyTrendResponse is the team's present/late counts per day over
// the past seven days.
type TeamWeeklyTrendResponse struct {
	Days []DailyTrendItem `json:"days"`
}

type DailyTrendItem struct {
	Date    string `json:"date"`
	DayName string `json:"day_name"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
}

// TodayTeamResponse lists everyone who has a record today, ordered by
// check-in time.
type TodayTeamResponse struct {
	Date    string                              `json:"date"`
	Records []attendance.TeamAttendanceResponse `json:"records"`
}

// MonthlyStatsRequest carries the month filter, YYYY-MM.
type MonthlyStatsRequest struct {
	Month string
}

func (r *MonthlyStatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
