package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceType enum
type AttendanceType string

const (
	TypeFullDay     AttendanceType = "full_day"
	TypeHalfDay     AttendanceType = "half_day"
	TypeCustomHours AttendanceType = "custom_hours"
	TypeAbsent      AttendanceType = "absent"
)

// Attendance covers an inclusive span of days for one employee. Office
// staff record spans, not single punches; overlapping spans are possible
// and are summed as-is during aggregation.
type Attendance struct {
	ID                string
	IndustryID        string
	EmployeeID        string
	StartDate         time.Time
	EndDate           time.Time
	Type              AttendanceType
	ShortfallHours    decimal.Decimal
	ExtraHours        decimal.Decimal
	CustomHoursPerDay *decimal.Decimal
	Remark            *string
	ApprovedBy        *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// DaysCount is the inclusive day count of the span.
func (a Attendance) DaysCount() int {
	return int(a.EndDate.Sub(a.StartDate).Hours()/24) + 1
}

// Summary is the aggregate of an employee's attendance over a period.
type Summary struct {
	WorkingDays   int
	DaysPresent   decimal.Decimal
	DaysAbsent    decimal.Decimal
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
}
