package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/report"
	"github.com/worktrack/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ListTeamAttendance(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	loc           *time.Location
}

func NewReportHandler(reportService report.ReportService, loc *time.Location) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		loc:           loc,
	}
}

func teamFilterFromQuery(r *http.Request) attendance.TeamFilter {
	return attendance.TeamFilter{
		SearchText: r.URL.Query().Get("search"),
		Status:     r.URL.Query().Get("status"),
	}
}

// ListTeamAttendance implements ReportHandler.
func (h *reportHandlerImpl) ListTeamAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ListTeamAttendance(r.Context(), teamFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements ReportHandler. The export honors the same filters
// as the list, so the file matches what the manager is looking at.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.reportService.ListTeamAttendance(r.Context(), teamFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.csv", time.Now().In(h.loc).Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.reportService.ExportCSV(w, records); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("Failed to stream csv export", "error", err)
	}
}
