package attendance

import (
	"time"
)

// Attendance status values. Status is assigned once at check-in and is
// never changed by check-out.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
)

// Statuses lists every valid status value.
var Statuses = []string{StatusPresent, StatusLate, StatusAbsent, StatusHalfDay}

type Attendance struct {
	ID         string
	UserID     string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalHours *float64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Profile join, populated by team-wide queries only
	Name         *string
	EmployeeCode *string
	Department   *string
}

// DateString returns the record's calendar day in YYYY-MM-DD form.
func (a Attendance) DateString() string {
	return a.Date.Format("2006-01-02")
}

// IsValidStatus reports whether s is one of the known status values.
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}
