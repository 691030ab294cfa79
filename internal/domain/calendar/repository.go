package calendar

import (
	"context"
	"time"
)

// CalendarRepository defines data access for tenant calendars.
// All methods include industryID to prevent cross-tenant data access.
type CalendarRepository interface {
	// Upsert creates or replaces the classification of a date
	Upsert(ctx context.Context, day CalendarDay) (CalendarDay, error)

	// GetByDateRange retrieves explicit entries in [from, to], ordered by date
	GetByDateRange(ctx context.Context, industryID string, from, to time.Time) ([]CalendarDay, error)

	// Delete removes an explicit entry; the date falls back to working day
	Delete(ctx context.Context, id string, industryID string) error
}
