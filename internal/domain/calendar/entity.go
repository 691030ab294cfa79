package calendar

import "time"

// DayType enum
type DayType string

const (
	DayTypeWorkingDay DayType = "working_day"
	DayTypeHoliday    DayType = "holiday"
	DayTypeWeekend    DayType = "weekend"
)

// CalendarDay is an explicit classification of one date for a tenant.
// Dates without an entry are treated as working days.
type CalendarDay struct {
	ID         string
	IndustryID string
	Date       time.Time
	Type       DayType
	Remark     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
