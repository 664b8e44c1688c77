package response

import (
	"errors"
	"net/http"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/profile"
	"github.com/worktrack/attendance-backend-go/internal/domain/user"
	"github.com/worktrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance state errors
	case errors.Is(err, attendance.ErrDuplicateCheckIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		Conflict(w, "No active check-in for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNegativeDuration):
		BadRequest(w, "Check-out time is before check-in time", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Identity errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
