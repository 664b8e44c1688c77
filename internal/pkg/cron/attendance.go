package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/user"
)

// AttendanceJobs materializes absence records after each work day ends.
// Team daily stats infer absence by subtraction for the current day; this
// job turns yesterday's inferred absences into stored facts, so history
// no longer conflates "no record yet" with "confirmed absent".
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	loc            *time.Location

	now func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		loc:            loc,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("materialize_absences", 1*time.Hour, j.MaterializeAbsences)
}

// MaterializeAbsences creates a status=absent record for every employee
// who has no record for yesterday. Runs hourly but acts only in the hour
// after local midnight.
func (j *AttendanceJobs) MaterializeAbsences(ctx context.Context) error {
	nowLocal := j.now().In(j.loc)
	if nowLocal.Hour() != 0 {
		return nil
	}

	yesterday := nowLocal.AddDate(0, 0, -1)
	// Weekends carry no attendance expectation under the single global
	// work-start schedule.
	if yesterday.Weekday() == time.Saturday || yesterday.Weekday() == time.Sunday {
		return nil
	}
	dateStr := yesterday.Format("2006-01-02")

	slog.Info("Cron: Starting absence materialization", "date", dateStr)

	employeeIDs, err := j.userRepo.ListEmployeeIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	marked := 0
	for _, userID := range employeeIDs {
		existing, err := j.attendanceRepo.GetByUserAndDate(ctx, userID, dateStr)
		if err != nil {
			slog.Error("Cron: Failed to look up attendance", "user_id", userID, "date", dateStr, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			UserID: userID,
			Date:   time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC),
			Status: attendance.StatusAbsent,
		})
		if err != nil {
			// A concurrent writer already settled this day.
			if errors.Is(err, attendance.ErrDuplicateCheckIn) {
				continue
			}
			slog.Error("Cron: Failed to create absence record", "user_id", userID, "date", dateStr, "error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Materialized absences", "date", dateStr, "count", marked)
	return nil
}
