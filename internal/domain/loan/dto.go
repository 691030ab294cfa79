package loan

import (
	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type CreateLoanRequest struct {
	EmployeeID          string          `json:"employee_id"`
	ApplicationDate     string          `json:"application_date"`
	Principal           decimal.Decimal `json:"principal"`
	StartDate           string          `json:"start_date"`
	InstallmentPerMonth decimal.Decimal `json:"installment_per_month"`
	Purpose             *string         `json:"purpose,omitempty"`
	DisbursementMethod  *string         `json:"disbursement_method,omitempty"`
	Remark              *string         `json:"remark,omitempty"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.ApplicationDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "application_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !r.Principal.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "principal", Message: "must be positive"})
	}
	if !r.InstallmentPerMonth.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "installment_per_month", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLoanStatusRequest struct {
	ID     string
	Status string `json:"status"` // "approved" or "rejected"
}

func (r *UpdateLoanStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'approved' or 'rejected'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	EmployeeName        *string         `json:"employee_name,omitempty"`
	ApplicationDate     string          `json:"application_date"`
	Principal           decimal.Decimal `json:"principal"`
	StartDate           string          `json:"start_date"`
	EndDate             *string         `json:"end_date,omitempty"`
	ProjectedEndDate    string          `json:"projected_end_date"`
	TotalInstallments   int             `json:"total_installments"`
	InstallmentPerMonth decimal.Decimal `json:"installment_per_month"`
	Status              string          `json:"status"`
	PaidToDate          decimal.Decimal `json:"paid_to_date"`
	Outstanding         decimal.Decimal `json:"outstanding"`
	Purpose             *string         `json:"purpose,omitempty"`
	DisbursementMethod  *string         `json:"disbursement_method,omitempty"`
	Remark              *string         `json:"remark,omitempty"`
}

type RepaymentEntryResponse struct {
	ID              string          `json:"id"`
	LoanID          string          `json:"loan_id"`
	PayrollRecordID string          `json:"payroll_record_id"`
	Amount          decimal.Decimal `json:"amount"`
	SalaryMonth     string          `json:"salary_month"`
	PaidAt          string          `json:"paid_at"`
}

type LoanFilter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}
