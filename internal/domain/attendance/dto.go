package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID        string           `json:"employee_id"`
	StartDate         string           `json:"start_date"`
	EndDate           string           `json:"end_date"`
	Type              string           `json:"type"`
	ShortfallHours    *decimal.Decimal `json:"shortfall_hours,omitempty"`
	ExtraHours        *decimal.Decimal `json:"extra_hours,omitempty"`
	CustomHoursPerDay *decimal.Decimal `json:"custom_hours_per_day,omitempty"`
	Remark            *string          `json:"remark,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	switch AttendanceType(r.Type) {
	case TypeFullDay, TypeHalfDay, TypeCustomHours, TypeAbsent:
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'full_day', 'half_day', 'custom_hours' or 'absent'"})
	}
	if r.ShortfallHours != nil && r.ShortfallHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "shortfall_hours", Message: "must be non-negative"})
	}
	if r.ExtraHours != nil && r.ExtraHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "extra_hours", Message: "must be non-negative"})
	}
	if r.CustomHoursPerDay != nil && !r.CustomHoursPerDay.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "custom_hours_per_day", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID                string
	StartDate         *string          `json:"start_date,omitempty"`
	EndDate           *string          `json:"end_date,omitempty"`
	Type              *string          `json:"type,omitempty"`
	ShortfallHours    *decimal.Decimal `json:"shortfall_hours,omitempty"`
	ExtraHours        *decimal.Decimal `json:"extra_hours,omitempty"`
	CustomHoursPerDay *decimal.Decimal `json:"custom_hours_per_day,omitempty"`
	Remark            *string          `json:"remark,omitempty"`
}

type AttendanceResponse struct {
	ID                string           `json:"id"`
	EmployeeID        string           `json:"employee_id"`
	EmployeeName      *string          `json:"employee_name,omitempty"`
	StartDate         string           `json:"start_date"`
	EndDate           string           `json:"end_date"`
	DaysCount         int              `json:"days_count"`
	Type              string           `json:"type"`
	ShortfallHours    decimal.Decimal  `json:"shortfall_hours"`
	ExtraHours        decimal.Decimal  `json:"extra_hours"`
	CustomHoursPerDay *decimal.Decimal `json:"custom_hours_per_day,omitempty"`
	Remark            *string          `json:"remark,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

type SummaryResponse struct {
	EmployeeID    string          `json:"employee_id"`
	PeriodMonth   string          `json:"period_month"`
	WorkingDays   int             `json:"working_days"`
	DaysPresent   decimal.Decimal `json:"days_present"`
	DaysAbsent    decimal.Decimal `json:"days_absent"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}
