package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Calendar days are passed as YYYY-MM-DD strings; the store enforces the
// one-record-per-(user, date) invariant.
type AttendanceRepository interface {
	// Create inserts a new attendance record. A conflict on (user_id, date)
	// returns ErrDuplicateCheckIn so that concurrent check-in attempts for
	// the same day resolve to exactly one winner.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate returns the record for a user on one day, or
	// (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Attendance, error)

	// Update persists check-out data (check_out_time, total_hours) for an
	// existing record. Status is never touched here.
	Update(ctx context.Context, att Attendance) error

	// ListByUserAndRange returns one user's records with date in
	// [startDate, endDate] inclusive, newest first.
	ListByUserAndRange(ctx context.Context, userID string, startDate, endDate string) ([]Attendance, error)

	// ListRecentByUser returns the user's latest records, newest first.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// ListByDate returns every record for one day across all users,
	// enriched with profile data and ordered by check-in time ascending.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// ListByDateRange returns every record with date in
	// [startDate, endDate] inclusive across all users, without the
	// profile join.
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]Attendance, error)

	// ListTeam returns all records system-wide enriched with profile
	// data, filtered and ordered by date descending.
	ListTeam(ctx context.Context, filter TeamFilter) ([]Attendance, error)
}
