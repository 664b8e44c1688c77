package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/worktrack/attendance-backend-go/internal/domain/user"
)

const trendDays = 7

type DashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	loc            *time.Location

	now func() time.Time
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	loc *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// GetMonthlyStats implements dashboard.DashboardService. The rollup is
// computed over whatever records exist; a month with none yields zeros.
func (s *DashboardServiceImpl) GetMonthlyStats(ctx context.Context, userID string, month string) (dashboard.MonthlyStatsResponse, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return dashboard.MonthlyStatsResponse{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	last := first.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByUserAndRange(
		ctx, userID,
		first.Format("2006-01-02"), last.Format("2006-01-02"),
	)
	if err != nil {
		return dashboard.MonthlyStatsResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	stats := dashboard.MonthlyStatsResponse{Month: month}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusAbsent:
			stats.Absent++
		}
		if rec.TotalHours != nil {
			stats.TotalHours += *rec.TotalHours
		}
	}
	stats.TotalHours = math.Round(stats.TotalHours*100) / 100

	return stats, nil
}

// GetWeeklyHours implements dashboard.DashboardService. Every one of the
// past seven days appears in the result, zero-filled when unworked.
func (s *DashboardServiceImpl) GetWeeklyHours(ctx context.Context, userID string) (dashboard.WeeklyHoursResponse, error) {
	today := s.localMidnight()
	start := today.AddDate(0, 0, -(trendDays - 1))

	records, err := s.attendanceRepo.ListByUserAndRange(
		ctx, userID,
		start.Format("2006-01-02"), today.Format("2006-01-02"),
	)
	if err != nil {
		return dashboard.WeeklyHoursResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	hoursByDate := make(map[string]float64, len(records))
	for _, rec := range records {
		if rec.TotalHours != nil {
			hoursByDate[rec.DateString()] = *rec.TotalHours
		}
	}

	resp := dashboard.WeeklyHoursResponse{Days: make([]dashboard.DailyHoursItem, 0, trendDays)}
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		resp.Days = append(resp.Days, dashboard.DailyHoursItem{
			Date:    date,
			DayName: d.Format("Mon"),
			Hours:   hoursByDate[date],
		})
	}

	return resp, nil
}

// GetTeamDailyStats implements dashboard.DashboardService. Absent counts
// are inferred by subtraction against the employee census, so missing
// records count as absences even before reconciliation runs.
func (s *DashboardServiceImpl) GetTeamDailyStats(ctx context.Context, date string) (dashboard.TeamDailyStatsResponse, error) {
	if date == "" {
		date = s.localMidnight().Format("2006-01-02")
	}

	total, err := s.userRepo.CountEmployees(ctx)
	if err != nil {
		return dashboard.TeamDailyStatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return dashboard.TeamDailyStatsResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	stats := dashboard.TeamDailyStatsResponse{Date: date, TotalEmployees: total}
	recorded := 0
	for _, rec := range records {
		switch rec.Status {
		// A half-day employee did attend; it occupies the day on the
		// present side.
		case attendance.StatusPresent, attendance.StatusHalfDay:
			stats.PresentToday++
			recorded++
		case attendance.StatusLate:
			stats.LateToday++
			recorded++
		case attendance.StatusAbsent:
			stats.AbsentToday++
			recorded++
		}
	}
	// Employees with no record at all are inferred absent on top of the
	// materialized ones.
	if missing := total - recorded; missing > 0 {
		stats.AbsentToday += missing
	}

	return stats, nil
}

// GetTeamWeeklyTrend implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTeamWeeklyTrend(ctx context.Context) (dashboard.TeamWeeklyTrendResponse, error) {
	today := s.localMidnight()
	start := today.AddDate(0, 0, -(trendDays - 1))

	records, err := s.attendanceRepo.ListByDateRange(
		ctx,
		start.Format("2006-01-02"), today.Format("2006-01-02"),
	)
	if err != nil {
		return dashboard.TeamWeeklyTrendResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	type dayCount struct{ present, late int }
	counts := make(map[string]dayCount)
	for _, rec := range records {
		c := counts[rec.DateString()]
		switch rec.Status {
		case attendance.StatusPresent:
			c.present++
		case attendance.StatusLate:
			c.late++
		}
		counts[rec.DateString()] = c
	}

	resp := dashboard.TeamWeeklyTrendResponse{Days: make([]dashboard.DailyTrendItem, 0, trendDays)}
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		resp.Days = append(resp.Days, dashboard.DailyTrendItem{
			Date:    date,
			DayName: d.Format("Mon"),
			Present: counts[date].present,
			Late:    counts[date].late,
		})
	}

	return resp, nil
}

// GetTodayTeamAttendance implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTodayTeamAttendance(ctx context.Context) (dashboard.TodayTeamResponse, error) {
	date := s.localMidnight().Format("2006-01-02")

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return dashboard.TodayTeamResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	resp := dashboard.TodayTeamResponse{
		Date:    date,
		Records: make([]attendance.TeamAttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, attendance.ToTeamResponse(rec, s.loc))
	}

	return resp, nil
}

func (s *DashboardServiceImpl) localMidnight() time.Time {
	n := s.now().In(s.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
