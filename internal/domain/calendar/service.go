package calendar

import (
	"context"
	"time"
)

// CalendarService classifies dates for a tenant. Missing entries degrade
// to working days, never to an error.
type CalendarService interface {
	// Classify returns the day type of a single date
	Classify(ctx context.Context, industryID string, date time.Time) (DayType, error)

	// CountWorkingDays counts working days in [start, end] inclusive
	CountWorkingDays(ctx context.Context, industryID string, start, end time.Time) (int, error)

	// UpsertDay creates or replaces an explicit calendar entry
	UpsertDay(ctx context.Context, req UpsertCalendarDayRequest) (CalendarDayResponse, error)

	// ListDays retrieves explicit entries in a date range
	ListDays(ctx context.Context, filter ListCalendarFilter) ([]CalendarDayResponse, error)

	// DeleteDay removes an explicit entry
	DeleteDay(ctx context.Context, id string) error
}
