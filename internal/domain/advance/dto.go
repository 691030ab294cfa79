package advance

import (
	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	EmployeeID    string          `json:"employee_id"`
	RequestedDate string          `json:"requested_date"`
	Amount        decimal.Decimal `json:"amount"`
	Month         string          `json:"month"` // "YYYY-MM"
	Reason        *string         `json:"reason,omitempty"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.RequestedDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "requested_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid month (YYYY-MM)"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdvanceStatusRequest struct {
	ID     string
	Status string `json:"status"` // "approved" or "rejected"
}

func (r *UpdateAdvanceStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'approved' or 'rejected'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  *string         `json:"employee_name,omitempty"`
	RequestedDate string          `json:"requested_date"`
	Amount        decimal.Decimal `json:"amount"`
	Month         string          `json:"month"`
	SettledAmount decimal.Decimal `json:"settled_amount"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	Status        string          `json:"status"`
	Reason        *string         `json:"reason,omitempty"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
}

type AdvanceFilter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}
