package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	StatusDraft PayrollStatus = "draft"
	StatusPaid  PayrollStatus = "paid"
	StatusHold  PayrollStatus = "hold"
)

// Deductions groups the three deduction kinds taken from gross pay.
type Deductions struct {
	Loan          decimal.Decimal
	Advance       decimal.Decimal
	ProvidentFund decimal.Decimal
}

func (d Deductions) Total() decimal.Decimal {
	return d.Loan.Add(d.Advance).Add(d.ProvidentFund)
}

// PayrollRecord is the computed payroll of one employee for one month.
// It stays a recomputable draft until finalization flips it to paid;
// only that transition touches the loan and advance ledgers.
type PayrollRecord struct {
	ID             string
	IndustryID     string
	EmployeeID     string
	PeriodMonth    Period
	WorkingDays    int
	DaysPresent    decimal.Decimal
	DaysAbsent     decimal.Decimal
	HoursWorked    decimal.Decimal
	OvertimeHours  decimal.Decimal
	BasicPay       decimal.Decimal
	OtherAllowance decimal.Decimal
	FoodAllowance  decimal.Decimal
	GrossPay       decimal.Decimal
	Deductions     Deductions
	TotalDeduction decimal.Decimal
	NetPay         decimal.Decimal
	Status         PayrollStatus
	PaymentMethod  *string
	Remark         *string
	ApprovedBy     *string
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}
