package calendar

import "errors"

var (
	ErrCalendarDayNotFound = errors.New("calendar day not found")
)
