package loan

import "context"

// LoanService defines loan application and approval logic. Ledger writes
// (paid_to_date, completion) are owned by the finalization flow, not here.
type LoanService interface {
	// CreateLoan registers a loan application in pending status
	CreateLoan(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)

	// GetLoan retrieves a single loan
	GetLoan(ctx context.Context, id string) (LoanResponse, error)

	// ListLoans retrieves loans with filters
	ListLoans(ctx context.Context, filter LoanFilter) ([]LoanResponse, int64, error)

	// UpdateLoanStatus approves or rejects a pending loan
	UpdateLoanStatus(ctx context.Context, req UpdateLoanStatusRequest) (LoanResponse, error)

	// GetRepayments retrieves the repayment history of a loan, oldest first
	GetRepayments(ctx context.Context, loanID string) ([]RepaymentEntryResponse, error)
}
