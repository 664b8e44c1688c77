package history

import (
	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
)

// CalendarViewResponse partitions a month's record dates into status
// buckets for calendar decoration, and resolves the selected date's
// record for the detail panel.
type CalendarViewResponse struct {
	Month   string         `json:"month"` // YYYY-MM, the month containing the selected date
	Buckets CalendarBucket `json:"buckets"`
	Detail  DateDetail     `json:"detail"`
	Recent  []attendance.AttendanceResponse `json:"recent"`
}

// CalendarBucket holds the dates (YYYY-MM-DD) carrying each status.
type CalendarBucket struct {
	Present []string `json:"present"`
	Late    []string `json:"late"`
	Absent  []string `json:"absent"`
	HalfDay []string `json:"half_day"`
}

// DateDetail is the selected date's outcome. HasRecord distinguishes "no
// record for this date" from a stored record whose status is absent.
type DateDetail struct {
	Date       string                         `json:"date"`
	HasRecord  bool                           `json:"has_record"`
	Attendance *attendance.AttendanceResponse `json:"attendance,omitempty"`
}
