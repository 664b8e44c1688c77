package history

import "context"

// HistoryService builds calendar-oriented views of one user's records.
type HistoryService interface {
	// BuildCalendarView loads the month containing selectedDate
	// (YYYY-MM-DD) and returns status buckets plus the selected date's
	// detail. A date with no record yields an explicit no-record detail.
	BuildCalendarView(ctx context.Context, userID string, selectedDate string) (CalendarViewResponse, error)
}
