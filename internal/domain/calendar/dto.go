package calendar

import (
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type UpsertCalendarDayRequest struct {
	Date   string  `json:"date"`
	Type   string  `json:"type"` // "working_day", "holiday" or "weekend"
	Remark *string `json:"remark,omitempty"`
}

func (r *UpsertCalendarDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	switch DayType(r.Type) {
	case DayTypeWorkingDay, DayTypeHoliday, DayTypeWeekend:
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'working_day', 'holiday' or 'weekend'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalendarDayResponse struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Remark *string `json:"remark,omitempty"`
}

type ListCalendarFilter struct {
	StartDate string
	EndDate   string
}
