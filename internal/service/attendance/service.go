package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
)

const defaultRecentLimit = 7

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository

	workStartHour   int
	workStartMinute int
	loc             *time.Location

	// now is swapped out in tests
	now func() time.Time
}

// NewAttendanceService builds the state engine. workStart is the daily
// late threshold in "HH:MM" form, interpreted in loc.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workStart string,
	loc *time.Location,
) (attendance.AttendanceService, error) {
	t, err := time.Parse("15:04", workStart)
	if err != nil {
		return nil, fmt.Errorf("invalid work start %q: %w", workStart, err)
	}

	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		workStartHour:   t.Hour(),
		workStartMinute: t.Minute(),
		loc:             loc,
		now:             time.Now,
	}, nil
}

// CheckIn implements attendance.AttendanceService. Status is decided
// here, once: strictly after the threshold is late, at or before it is
// present. Check-out never revisits it.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowUTC := s.now().UTC()
	nowLocal := nowUTC.In(s.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateCheckIn
	}

	workStart := time.Date(
		nowLocal.Year(), nowLocal.Month(), nowLocal.Day(),
		s.workStartHour, s.workStartMinute, 0, 0,
		s.loc,
	)

	status := attendance.StatusPresent
	if nowLocal.After(workStart) {
		status = attendance.StatusLate
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		UserID:  userID,
		Date:    time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn: &nowUTC,
		Status:  status,
	})
	if err != nil {
		// A concurrent check-in for the same day won the insert race.
		if errors.Is(err, attendance.ErrDuplicateCheckIn) {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateCheckIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(created, s.loc), nil
}

// CheckOut implements attendance.AttendanceService. A clock anomaly
// (now before check-in) is rejected outright, never clamped to zero.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowUTC := s.now().UTC()
	nowLocal := nowUTC.In(s.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	rec, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if rec == nil || rec.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveCheckIn
	}
	if rec.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if nowUTC.Before(*rec.CheckIn) {
		return attendance.AttendanceResponse{}, attendance.ErrNegativeDuration
	}

	totalHours := math.Round(nowUTC.Sub(*rec.CheckIn).Hours()*100) / 100

	rec.CheckOut = &nowUTC
	rec.TotalHours = &totalHours

	if err := s.attendanceRepo.Update(ctx, *rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.ToResponse(*rec, s.loc), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	nowLocal := s.now().In(s.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	rec, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if rec == nil {
		return attendance.TodayResponse{State: attendance.StateNotCheckedIn}, nil
	}

	resp := attendance.ToResponse(*rec, s.loc)
	state := attendance.StateNotCheckedIn
	switch {
	case rec.CheckOut != nil:
		state = attendance.StateCheckedOut
	case rec.CheckIn != nil:
		state = attendance.StateCheckedIn
	}

	return attendance.TodayResponse{State: state, Attendance: &resp}, nil
}

// GetRecent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRecent(ctx context.Context, userID string, limit int) ([]attendance.AttendanceResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	records, err := s.attendanceRepo.ListRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec, s.loc))
	}
	return responses, nil
}
