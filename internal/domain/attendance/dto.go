package attendance

import (
	"time"

	"github.com/worktrack/attendance-backend-go/internal/pkg/validator"
)

// Today's check-in state, strictly linear: a settled day never re-enters
// an earlier state.
const (
	StateNotCheckedIn = "not_checked_in"
	StateCheckedIn    = "checked_in"
	StateCheckedOut   = "checked_out"
)

// StatusFilterAll is the sentinel that disables status filtering.
const StatusFilterAll = "all"

type AttendanceResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Date         string   `json:"date"`
	CheckInTime  *string  `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time"`
	TotalHours   *float64 `json:"total_hours"`
	Status       string   `json:"status"`
}

// TodayResponse distinguishes "no record yet" from a record in either
// checked-in or checked-out state.
type TodayResponse struct {
	State      string              `json:"state"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

// TeamAttendanceResponse is an attendance record joined with the profile
// directory for manager-side views.
type TeamAttendanceResponse struct {
	AttendanceResponse
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_id"`
	Department   string `json:"department"`
}

// TeamFilter holds the manager-side list predicates. SearchText matches
// case-insensitively against name, employee id, or department; Status is
// one concrete value or "all". Predicates compose by AND.
type TeamFilter struct {
	SearchText string
	Status     string
}

func (f *TeamFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && f.Status != StatusFilterAll && !IsValidStatus(f.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, absent, half-day, or all",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FormatClock renders a timestamp the way the views show it
// (e.g. "9:05 AM"), in the given zone. Timestamps are stored UTC; the
// same zone that classifies lateness renders the clock.
func FormatClock(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("3:04 PM")
	return &s
}

// ToResponse converts an entity to its API shape, rendering clock
// fields in loc.
func ToResponse(att Attendance, loc *time.Location) AttendanceResponse {
	return AttendanceResponse{
		ID:           att.ID,
		UserID:       att.UserID,
		Date:         att.DateString(),
		CheckInTime:  FormatClock(att.CheckIn, loc),
		CheckOutTime: FormatClock(att.CheckOut, loc),
		TotalHours:   att.TotalHours,
		Status:       att.Status,
	}
}

// ToTeamResponse converts a profile-joined entity to its API shape.
// Missing profile fields render as empty strings.
func ToTeamResponse(att Attendance, loc *time.Location) TeamAttendanceResponse {
	resp := TeamAttendanceResponse{AttendanceResponse: ToResponse(att, loc)}
	if att.Name != nil {
		resp.Name = *att.Name
	}
	if att.EmployeeCode != nil {
		resp.EmployeeCode = *att.EmployeeCode
	}
	if att.Department != nil {
		resp.Department = *att.Department
	}
	return resp
}
