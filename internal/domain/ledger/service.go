package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Dues are the debt deductions owed for one salary month: the scheduled
// installments of active loans plus the unrecovered balance of advances
// drawn against the month or earlier.
type Dues struct {
	LoanDue    decimal.Decimal
	AdvanceDue decimal.Decimal
}

// LedgerService coordinates the loan and advance ledgers. Reads feed the
// payroll draft; ApplyDeductions is called exactly once per record, from
// inside the finalization transaction.
type LedgerService interface {
	// DuesFor computes the loan and advance amounts due for the salary
	// month starting at month
	DuesFor(ctx context.Context, industryID, employeeID string, month time.Time) (Dues, error)

	// ApplyDeductions distributes the finalized loan and advance deduction
	// amounts across the employee's ledgers, oldest debt first, recording a
	// repayment entry per loan touched. An amount that cannot be absorbed
	// by the open debts is an inconsistency error; nothing is clamped.
	ApplyDeductions(ctx context.Context, industryID, employeeID, payrollRecordID string, month time.Time, loanAmount, advanceAmount decimal.Decimal) error
}
