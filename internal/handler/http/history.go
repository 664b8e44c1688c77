package http

import (
	"net/http"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/history"
	"github.com/worktrack/attendance-backend-go/internal/handler/http/response"
	"github.com/worktrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/worktrack/attendance-backend-go/internal/pkg/validator"
)

type HistoryHandler interface {
	GetCalendarView(w http.ResponseWriter, r *http.Request)
}

type historyHandlerImpl struct {
	historyService history.HistoryService
	loc            *time.Location
}

func NewHistoryHandler(historyService history.HistoryService, loc *time.Location) HistoryHandler {
	return &historyHandlerImpl{
		historyService: historyService,
		loc:            loc,
	}
}

// GetCalendarView implements HistoryHandler. The selected date defaults
// to today in the configured zone; the month shown is the one
// containing it.
func (h *historyHandlerImpl) GetCalendarView(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().In(h.loc).Format("2006-01-02")
	} else if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.historyService.BuildCalendarView(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
