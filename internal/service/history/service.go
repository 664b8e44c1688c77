package history

import (
	"context"
	"fmt"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/history"
)

const recentLimit = 7

type HistoryServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
}

func NewHistoryService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) history.HistoryService {
	return &HistoryServiceImpl{attendanceRepo: attendanceRepo, loc: loc}
}

// BuildCalendarView implements history.HistoryService. One month load
// feeds both the bucket decoration and the selected-date detail.
func (s *HistoryServiceImpl) BuildCalendarView(ctx context.Context, userID string, selectedDate string) (history.CalendarViewResponse, error) {
	selected, err := time.Parse("2006-01-02", selectedDate)
	if err != nil {
		return history.CalendarViewResponse{}, fmt.Errorf("invalid date %q: %w", selectedDate, err)
	}

	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByUserAndRange(
		ctx, userID,
		first.Format("2006-01-02"), last.Format("2006-01-02"),
	)
	if err != nil {
		return history.CalendarViewResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	resp := history.CalendarViewResponse{
		Month:  first.Format("2006-01"),
		Detail: history.DateDetail{Date: selectedDate},
	}

	for _, rec := range records {
		date := rec.DateString()
		switch rec.Status {
		case attendance.StatusPresent:
			resp.Buckets.Present = append(resp.Buckets.Present, date)
		case attendance.StatusLate:
			resp.Buckets.Late = append(resp.Buckets.Late, date)
		case attendance.StatusAbsent:
			resp.Buckets.Absent = append(resp.Buckets.Absent, date)
		case attendance.StatusHalfDay:
			resp.Buckets.HalfDay = append(resp.Buckets.HalfDay, date)
		}

		if date == selectedDate {
			r := attendance.ToResponse(rec, s.loc)
			resp.Detail.HasRecord = true
			resp.Detail.Attendance = &r
		}
	}

	recent, err := s.attendanceRepo.ListRecentByUser(ctx, userID, recentLimit)
	if err != nil {
		return history.CalendarViewResponse{}, fmt.Errorf("failed to list recent attendances: %w", err)
	}
	resp.Recent = make([]attendance.AttendanceResponse, 0, len(recent))
	for _, rec := range recent {
		resp.Recent = append(resp.Recent, attendance.ToResponse(rec, s.loc))
	}

	return resp, nil
}
