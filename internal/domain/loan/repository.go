package loan

import (
	"context"
	"time"
)

// LoanRepository defines data access for loans and repayment history.
// All methods include industryID to prevent cross-tenant data access.
// Writes to paid_to_date happen only through UpdateLedger, which the
// finalization transaction is the sole caller of.
type LoanRepository interface {
	// Create creates a new loan application
	Create(ctx context.Context, loan Loan) (Loan, error)

	// GetByID retrieves a loan with tenant isolation
	GetByID(ctx context.Context, id string, industryID string) (Loan, error)

	// GetActiveByEmployee retrieves approved loans running as of the given
	// month (started on or before it, not ended before it), oldest first
	GetActiveByEmployee(ctx context.Context, employeeID string, asOfMonth time.Time, industryID string) ([]Loan, error)

	// List retrieves loans with filters and pagination
	List(ctx context.Context, filter LoanFilter, industryID string) ([]Loan, int64, error)

	// UpdateStatus approves or rejects a pending loan
	UpdateStatus(ctx context.Context, id string, industryID string, status LoanStatus, approvedBy string) error

	// UpdateLedger persists a ledger application: new paid_to_date plus
	// the status/end-date flip when the loan completes
	UpdateLedger(ctx context.Context, loan Loan) error

	// CreateRepayment appends a repayment entry
	CreateRepayment(ctx context.Context, entry RepaymentEntry) (RepaymentEntry, error)

	// GetRepaymentsByLoan retrieves repayment history, oldest first
	GetRepaymentsByLoan(ctx context.Context, loanID string, industryID string) ([]RepaymentEntry, error)

	// GetRepaymentsByPayrollRecord retrieves entries written by one finalization
	GetRepaymentsByPayrollRecord(ctx context.Context, payrollRecordID string, industryID string) ([]RepaymentEntry, error)
}
