package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state errors
	ErrDuplicateCheckIn  = errors.New("you have already checked in today")
	ErrNoActiveCheckIn   = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrNegativeDuration  = errors.New("check-out time is before check-in time")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
