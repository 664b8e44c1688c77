package dashboard

import "context"

// DashboardService is the aggregation engine: pure rollups computed from
// store reads. Aggregations never fail on empty input; they return zeroed
// results so downstream views always render.
type DashboardService interface {
	// GetMonthlyStats rolls up one user's records for a month (YYYY-MM):
	// counts by status plus summed total hours.
	GetMonthlyStats(ctx context.Context, userID string, month string) (MonthlyStatsResponse, error)

	// GetWeeklyHours returns the user's worked hours for each of the past
	// seven days, zero-filled.
	GetWeeklyHours(ctx context.Context, userID string) (WeeklyHoursResponse, error)

	// GetTeamDailyStats summarises one day (YYYY-MM-DD) team-wide,
	// inferring absences by subtraction.
	GetTeamDailyStats(ctx context.Context, date string) (TeamDailyStatsResponse, error)

	// GetTeamWeeklyTrend returns team present/late counts for each of the
	// past seven days.
	GetTeamWeeklyTrend(ctx context.Context) (TeamWeeklyTrendResponse, error)

	// GetTodayTeamAttendance lists today's records across the team with
	// profile data, ordered by check-in time.
	GetTodayTeamAttendance(ctx context.Context) (TodayTeamResponse, error)
}
