package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	for i := range f.records {
		if f.records[i].UserID == userID && f.records[i].DateString() == date {
			cp := f.records[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		d := rec.DateString()
		if rec.UserID == userID && d >= startDate && d <= endDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.DateString() == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		d := rec.DateString()
		if d >= startDate && d <= endDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListTeam(ctx context.Context, filter attendance.TeamFilter) ([]attendance.Attendance, error) {
	return f.records, nil
}

type fakeUserRepo struct {
	employeeCount int
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) CountEmployees(ctx context.Context) (int, error) {
	return f.employeeCount, nil
}

func (f *fakeUserRepo) ListEmployeeIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

func hours(h float64) *float64 { return &h }

func record(userID, date, status string, totalHours *float64) attendance.Attendance {
	d, _ := time.Parse("2006-01-02", date)
	return attendance.Attendance{
		UserID:     userID,
		Date:       d,
		Status:     status,
		TotalHours: totalHours,
	}
}

func newTestService(attRepo *fakeAttendanceRepo, userRepo *fakeUserRepo, now time.Time) *DashboardServiceImpl {
	svc := NewDashboardService(attRepo, userRepo, time.UTC).(*DashboardServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetMonthlyStats_CountsAndSums(t *testing.T) {
	ctx := context.Background()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("user-1", "2025-03-03", attendance.StatusPresent, hours(8)),
		record("user-1", "2025-03-04", attendance.StatusLate, hours(7.5)),
		record("user-1", "2025-03-05", attendance.StatusAbsent, nil),
		record("user-1", "2025-03-06", attendance.StatusPresent, hours(8.25)),
		// Other users and other months stay out of the rollup.
		record("user-2", "2025-03-03", attendance.StatusPresent, hours(8)),
		record("user-1", "2025-02-28", attendance.StatusPresent, hours(8)),
	}}
	svc := newTestService(attRepo, &fakeUserRepo{}, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	stats, err := svc.GetMonthlyStats(ctx, "user-1", "2025-03")

	require.NoError(t, err)
	assert.Equal(t, "2025-03", stats.Month)
	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 23.75, stats.TotalHours)
}

func TestGetMonthlyStats_EmptyMonth_AllZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&fakeAttendanceRepo{}, &fakeUserRepo{}, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	stats, err := svc.GetMonthlyStats(ctx, "user-1", "2025-01")

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Present)
	assert.Equal(t, 0, stats.Absent)
	assert.Equal(t, 0, stats.Late)
	assert.Equal(t, 0.0, stats.TotalHours)
}

func TestGetWeeklyHours_ZeroFillsMissingDays(t *testing.T) {
	ctx := context.Background()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("user-1", "2025-03-10", attendance.StatusPresent, hours(8)),
		record("user-1", "2025-03-12", attendance.StatusLate, hours(6.5)),
		// Still checked in, no settled hours yet.
		record("user-1", "2025-03-14", attendance.StatusPresent, nil),
	}}
	svc := newTestService(attRepo, &fakeUserRepo{}, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))

	resp, err := svc.GetWeeklyHours(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2025-03-08", resp.Days[0].Date)
	assert.Equal(t, "Sat", resp.Days[0].DayName)
	assert.Equal(t, 0.0, resp.Days[0].Hours)
	assert.Equal(t, 8.0, resp.Days[2].Hours)
	assert.Equal(t, 6.5, resp.Days[4].Hours)
	assert.Equal(t, "2025-03-14", resp.Days[6].Date)
	assert.Equal(t, 0.0, resp.Days[6].Hours)
}

func TestGetTeamDailyStats_InfersAbsenceBySubtraction(t *testing.T) {
	ctx := context.Background()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2025-03-10", attendance.StatusPresent, nil),
		record("u2", "2025-03-10", attendance.StatusPresent, nil),
		record("u3", "2025-03-10", attendance.StatusLate, nil),
		record("u4", "2025-03-10", attendance.StatusPresent, nil),
		record("u5", "2025-03-10", attendance.StatusPresent, nil),
		record("u6", "2025-03-10", attendance.StatusLate, nil),
	}}
	svc := newTestService(attRepo, &fakeUserRepo{employeeCount: 10}, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	stats, err := svc.GetTeamDailyStats(ctx, "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalEmployees)
	assert.Equal(t, 4, stats.PresentToday)
	assert.Equal(t, 2, stats.LateToday)
	assert.Equal(t, 4, stats.AbsentToday)
}

func TestGetTeamDailyStats_MaterializedAbsenceNotDoubleCounted(t *testing.T) {
	ctx := context.Background()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2025-03-10", attendance.StatusPresent, nil),
		record("u2", "2025-03-10", attendance.StatusAbsent, nil),
	}}
	svc := newTestService(attRepo, &fakeUserRepo{employeeCount: 3}, time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC))

	stats, err := svc.GetTeamDailyStats(ctx, "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.PresentToday)
	// One stored absence plus one employee with no record at all.
	assert.Equal(t, 2, stats.AbsentToday)
}

func TestGetTeamDailyStats_HalfDayCountsAsPresent(t *testing.T) {
	ctx := context.Background()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2025-03-10", attendance.StatusHalfDay, nil),
		record("u2", "2025-03-10", attendance.StatusAbsent, nil),
	}}
	svc := newTestService(attRepo, &fakeUserRepo{employeeCount: 4}, time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC))

	stats, err := svc.GetTeamDailyStats(ctx, "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.PresentToday)
	assert.Equal(t, 0, stats.LateToday)
	// One stored absence plus two employees with no record.
	assert.Equal(t, 3, stats.AbsentToday)
}

func TestGetTeamDailyStats_NoRecords(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&fakeAttendanceRepo{}, &fakeUserRepo{employeeCount: 5}, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	stats, err := svc.GetTeamDailyStats(ctx, "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, 0, stats.PresentToday)
	assert.Equal(t, 0, stats.LateToday)
	assert.Equal(t, 5, stats.AbsentToday)
}

func TestGetTeamDailyStats_DefaultsToToday(t *testing.T) {
	ctx := context.Background()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2025-03-10", attendance.StatusPresent, nil),
	}}
	svc := newTestService(attRepo, &fakeUserRepo{employeeCount: 1}, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	stats, err := svc.GetTeamDailyStats(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", stats.Date)
	assert.Equal(t, 1, stats.PresentToday)
}

func TestGetTeamWeeklyTrend_CountsPerDay(t *testing.T) {
	ctx := context.Background()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2025-03-10", attendance.StatusPresent, nil),
		record("u2", "2025-03-10", attendance.StatusLate, nil),
		record("u1", "2025-03-12", attendance.StatusPresent, nil),
		record("u2", "2025-03-12", attendance.StatusPresent, nil),
		record("u3", "2025-03-12", attendance.StatusAbsent, nil),
	}}
	svc := newTestService(attRepo, &fakeUserRepo{}, time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))

	resp, err := svc.GetTeamWeeklyTrend(ctx)

	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	byDate := make(map[string][2]int)
	for _, d := range resp.Days {
		byDate[d.Date] = [2]int{d.Present, d.Late}
	}
	assert.Equal(t, [2]int{1, 1}, byDate["2025-03-10"])
	assert.Equal(t, [2]int{2, 0}, byDate["2025-03-12"])
	assert.Equal(t, [2]int{0, 0}, byDate["2025-03-13"])
}

func TestGetTodayTeamAttendance_MapsProfileFields(t *testing.T) {
	ctx := context.Background()
	name := "Dewi Lestari"
	code := "EMP-007"
	dept := "Engineering"
	rec := record("u1", "2025-03-10", attendance.StatusPresent, nil)
	rec.Name = &name
	rec.EmployeeCode = &code
	rec.Department = &dept
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{rec}}
	svc := newTestService(attRepo, &fakeUserRepo{}, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	resp, err := svc.GetTodayTeamAttendance(ctx)

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", resp.Date)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Dewi Lestari", resp.Records[0].Name)
	assert.Equal(t, "EMP-007", resp.Records[0].EmployeeCode)
	assert.Equal(t, "Engineering", resp.Records[0].Department)
}
