package repository

import (
	"context"
	"time"
)

// ICalendar defines the Google Calendar reads used by the OAuth diagnostic
type ICalendar interface {
	CountCalendars(ctx context.Context) (int, error)
	CountUpcomingEvents(ctx context.Context, calendarID string, from time.Time, limit int64) (int, error)
}
