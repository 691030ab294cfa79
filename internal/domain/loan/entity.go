package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus enum
type LoanStatus string

const (
	StatusPending   LoanStatus = "pending"
	StatusApproved  LoanStatus = "approved"
	StatusRejected  LoanStatus = "rejected"
	StatusCompleted LoanStatus = "completed"
)

// Loan is a long-running debt repaid in monthly installments deducted
// from payroll. PaidToDate only ever grows, and only through finalization.
type Loan struct {
	ID                  string
	IndustryID          string
	EmployeeID          string
	ApplicationDate     time.Time
	Principal           decimal.Decimal
	StartDate           time.Time
	EndDate             *time.Time
	TotalInstallments   int
	InstallmentPerMonth decimal.Decimal
	Status              LoanStatus
	PaidToDate          decimal.Decimal
	Purpose             *string
	DisbursementMethod  *string
	ApprovedBy          *string
	Remark              *string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields
	EmployeeName *string
}

// Outstanding is the unpaid principal.
func (l Loan) Outstanding() decimal.Decimal {
	return l.Principal.Sub(l.PaidToDate)
}

// DueInstallment is the amount due this month: the scheduled installment,
// capped by what is still outstanding.
func (l Loan) DueInstallment() decimal.Decimal {
	if out := l.Outstanding(); out.LessThan(l.InstallmentPerMonth) {
		return out
	}
	return l.InstallmentPerMonth
}

// ProjectedEndDate estimates when the loan will complete at the current
// schedule. Informational only; the authoritative EndDate is set when the
// loan actually completes.
func (l Loan) ProjectedEndDate() time.Time {
	if !l.InstallmentPerMonth.IsPositive() {
		return l.StartDate
	}
	remaining := int(l.Outstanding().Div(l.InstallmentPerMonth).Ceil().IntPart())
	elapsed := int(l.PaidToDate.Div(l.InstallmentPerMonth).Floor().IntPart())
	return l.StartDate.AddDate(0, remaining+elapsed, 0)
}

// RepaymentEntry records one application of a payroll deduction against a
// loan. Entries are append-only and written only during finalization.
type RepaymentEntry struct {
	ID              string
	LoanID          string
	PayrollRecordID string
	Amount          decimal.Decimal
	SalaryMonth     string
	PaidAt          time.Time
}
