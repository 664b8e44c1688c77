package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/report"
)

// csvHeader is the fixed export header. Column order is part of the
// export contract.
var csvHeader = []string{
	"Date", "Employee ID", "Name", "Department",
	"Check In", "Check Out", "Total Hours", "Status",
}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) report.ReportService {
	return &ReportServiceImpl{attendanceRepo: attendanceRepo, loc: loc}
}

// ListTeamAttendance implements report.ReportService.
func (s *ReportServiceImpl) ListTeamAttendance(ctx context.Context, filter attendance.TeamFilter) ([]attendance.TeamAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListTeam(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list team attendances: %w", err)
	}

	responses := make([]attendance.TeamAttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToTeamResponse(rec, s.loc))
	}
	return responses, nil
}

// ExportCSV implements report.ReportService. encoding/csv handles the
// quoting, so names containing commas, quotes, or newlines round-trip
// intact.
func (s *ReportServiceImpl) ExportCSV(w io.Writer, records []attendance.TeamAttendanceResponse) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Date,
			rec.EmployeeCode,
			rec.Name,
			rec.Department,
			derefString(rec.CheckInTime),
			derefString(rec.CheckOutTime),
			formatHours(rec.TotalHours),
			rec.Status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatHours(h *float64) string {
	if h == nil {
		return ""
	}
	return strconv.FormatFloat(*h, 'f', -1, 64)
}
