package report

import (
	"context"
	"io"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
)

// ReportService is the manager-side query and export surface.
type ReportService interface {
	// ListTeamAttendance returns all records system-wide joined against
	// the profile directory, filtered and ordered by date descending.
	ListTeamAttendance(ctx context.Context, filter attendance.TeamFilter) ([]attendance.TeamAttendanceResponse, error)

	// ExportCSV writes the given records as CSV: a fixed header row, one
	// row per record, fields quoted whenever they contain the delimiter,
	// quote character, or line breaks. Missing optional fields render as
	// empty strings.
	ExportCSV(w io.Writer, records []attendance.TeamAttendanceResponse) error
}
