package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	recent  []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
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
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListTeam(ctx context.Context, filter attendance.TeamFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func record(userID, date, status string) attendance.Attendance {
	d, _ := time.Parse("2006-01-02", date)
	return attendance.Attendance{UserID: userID, Date: d, Status: status}
}

func TestBuildCalendarView_BucketsByStatus(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("user-1", "2025-03-03", attendance.StatusPresent),
		record("user-1", "2025-03-04", attendance.StatusLate),
		record("user-1", "2025-03-05", attendance.StatusAbsent),
		record("user-1", "2025-03-06", attendance.StatusHalfDay),
		record("user-1", "2025-03-07", attendance.StatusPresent),
		// Adjacent month stays out of the buckets.
		record("user-1", "2025-02-28", attendance.StatusPresent),
	}}
	svc := NewHistoryService(repo, time.UTC)

	view, err := svc.BuildCalendarView(ctx, "user-1", "2025-03-15")

	require.NoError(t, err)
	assert.Equal(t, "2025-03", view.Month)
	assert.ElementsMatch(t, []string{"2025-03-03", "2025-03-07"}, view.Buckets.Present)
	assert.ElementsMatch(t, []string{"2025-03-04"}, view.Buckets.Late)
	assert.ElementsMatch(t, []string{"2025-03-05"}, view.Buckets.Absent)
	assert.ElementsMatch(t, []string{"2025-03-06"}, view.Buckets.HalfDay)
}

func TestBuildCalendarView_SelectedDateWithRecord(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("user-1", "2025-03-04", attendance.StatusLate),
	}}
	svc := NewHistoryService(repo, time.UTC)

	view, err := svc.BuildCalendarView(ctx, "user-1", "2025-03-04")

	require.NoError(t, err)
	assert.True(t, view.Detail.HasRecord)
	require.NotNil(t, view.Detail.Attendance)
	assert.Equal(t, attendance.StatusLate, view.Detail.Attendance.Status)
}

func TestBuildCalendarView_NoRecordIsExplicit(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("user-1", "2025-03-04", attendance.StatusPresent),
	}}
	svc := NewHistoryService(repo, time.UTC)

	view, err := svc.BuildCalendarView(ctx, "user-1", "2025-03-05")

	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", view.Detail.Date)
	assert.False(t, view.Detail.HasRecord)
	assert.Nil(t, view.Detail.Attendance)
}

func TestBuildCalendarView_StoredAbsenceIsARecord(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("user-1", "2025-03-05", attendance.StatusAbsent),
	}}
	svc := NewHistoryService(repo, time.UTC)

	view, err := svc.BuildCalendarView(ctx, "user-1", "2025-03-05")

	require.NoError(t, err)
	// A materialized absence is a real record, not "no record".
	assert.True(t, view.Detail.HasRecord)
	require.NotNil(t, view.Detail.Attendance)
	assert.Equal(t, attendance.StatusAbsent, view.Detail.Attendance.Status)
}

func TestBuildCalendarView_IncludesRecent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAttendanceRepo{
		recent: []attendance.Attendance{
			record("user-1", "2025-03-05", attendance.StatusPresent),
			record("user-1", "2025-03-04", attendance.StatusLate),
		},
	}
	svc := NewHistoryService(repo, time.UTC)

	view, err := svc.BuildCalendarView(ctx, "user-1", "2025-03-05")

	require.NoError(t, err)
	require.Len(t, view.Recent, 2)
	assert.Equal(t, "2025-03-05", view.Recent[0].Date)
}

func TestBuildCalendarView_InvalidDate(t *testing.T) {
	svc := NewHistoryService(&fakeAttendanceRepo{}, time.UTC)

	_, err := svc.BuildCalendarView(context.Background(), "user-1", "03/05/2025")

	assert.Error(t, err)
}
