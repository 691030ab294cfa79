package loan

import "errors"

var (
	ErrLoanNotFound   = errors.New("loan not found")
	ErrLoanNotPending = errors.New("loan is not pending approval")

	// ErrLedgerInconsistency means an application would push paid_to_date
	// past the principal. It is rejected, never clamped: the caller asked
	// for something the ledger says is impossible, which indicates
	// corrupted upstream data.
	ErrLedgerInconsistency = errors.New("loan repayment exceeds outstanding principal")
)
