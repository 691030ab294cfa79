package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type ComputeDraftRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth string `json:"period_month"` // "YYYY-MM"
}

func (r *ComputeDraftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidMonth(r.PeriodMonth); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be a valid month (YYYY-MM)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OverrideDraftRequest corrects intermediate figures on a draft. Each set
// field re-runs only the computation downstream of it; upstream facts are
// left exactly as staff entered them.
type OverrideDraftRequest struct {
	ID               string
	DaysPresent      *decimal.Decimal `json:"days_present,omitempty"`
	HoursWorked      *decimal.Decimal `json:"hours_worked,omitempty"`
	OvertimeHours    *decimal.Decimal `json:"overtime_hours,omitempty"`
	BasicPay         *decimal.Decimal `json:"basic_pay,omitempty"`
	OtherAllowance   *decimal.Decimal `json:"other_allowance,omitempty"`
	FoodAllowance    *decimal.Decimal `json:"food_allowance,omitempty"`
	LoanDeduction    *decimal.Decimal `json:"loan_deduction,omitempty"`
	AdvanceDeduction *decimal.Decimal `json:"advance_deduction,omitempty"`
	PFDeduction      *decimal.Decimal `json:"pf_deduction,omitempty"`
	Status           *string          `json:"status,omitempty"` // "draft" or "hold"
	PaymentMethod    *string          `json:"payment_method,omitempty"`
	Remark           *string          `json:"remark,omitempty"`
}

func (r *OverrideDraftRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*decimal.Decimal{
		"days_present":      r.DaysPresent,
		"hours_worked":      r.HoursWorked,
		"overtime_hours":    r.OvertimeHours,
		"basic_pay":         r.BasicPay,
		"other_allowance":   r.OtherAllowance,
		"food_allowance":    r.FoodAllowance,
		"loan_deduction":    r.LoanDeduction,
		"advance_deduction": r.AdvanceDeduction,
		"pf_deduction":      r.PFDeduction,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.Status != nil && *r.Status != string(StatusDraft) && *r.Status != string(StatusHold) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'draft' or 'hold'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	PeriodMonth      string          `json:"period_month"`
	WorkingDays      int             `json:"working_days"`
	DaysPresent      decimal.Decimal `json:"days_present"`
	DaysAbsent       decimal.Decimal `json:"days_absent"`
	HoursWorked      decimal.Decimal `json:"hours_worked"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	BasicPay         decimal.Decimal `json:"basic_pay"`
	OtherAllowance   decimal.Decimal `json:"other_allowance"`
	FoodAllowance    decimal.Decimal `json:"food_allowance"`
	GrossPay         decimal.Decimal `json:"gross_pay"`
	LoanDeduction    decimal.Decimal `json:"loan_deduction"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
	PFDeduction      decimal.Decimal `json:"pf_deduction"`
	TotalDeduction   decimal.Decimal `json:"total_deduction"`
	NetPay           decimal.Decimal `json:"net_pay"`
	Status           string          `json:"status"`
	PaymentMethod    *string         `json:"payment_method,omitempty"`
	Remark           *string         `json:"remark,omitempty"`
	PaidAt           *string         `json:"paid_at,omitempty"`
}

// FinalizeOutcome distinguishes a first successful finalization from the
// idempotent no-op on an already-paid record.
type FinalizeOutcome string

const (
	OutcomeFinalized        FinalizeOutcome = "finalized"
	OutcomeAlreadyFinalized FinalizeOutcome = "already_finalized"
)

type FinalizeResponse struct {
	Outcome FinalizeOutcome       `json:"outcome"`
	Record  PayrollRecordResponse `json:"record"`
}

type PayrollFilter struct {
	EmployeeID  string
	PeriodMonth string
	Status      string
	Page        int
	Limit       int
}
