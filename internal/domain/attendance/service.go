package attendance

import (
	"context"
)

// AttendanceService defines the check-in/check-out state engine plus the
// employee-side reads. The acting user is always passed explicitly; there
// is no ambient session state.
type AttendanceService interface {
	// CheckIn creates today's record for the user, classifying status as
	// present or late against the work-start threshold. Fails with
	// ErrDuplicateCheckIn if a record already exists for today.
	CheckIn(ctx context.Context, userID string) (AttendanceResponse, error)

	// CheckOut settles today's record, computing total hours. Fails with
	// ErrNoActiveCheckIn, ErrAlreadyCheckedOut, or ErrNegativeDuration.
	CheckOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// GetToday returns today's record with an explicit state, so callers
	// can tell "not checked in" apart from a settled day.
	GetToday(ctx context.Context, userID string) (TodayResponse, error)

	// GetRecent returns the user's latest records, newest first.
	GetRecent(ctx context.Context, userID string, limit int) ([]AttendanceResponse, error)
}
