package payroll

import "context"

// PayrollService defines the payroll computation and finalization logic.
type PayrollService interface {
	// ComputeDraft (re)computes the draft record for an employee and
	// month from attendance, rates and the debt ledger. Safe to call on
	// every input edit; it refuses to touch a paid record.
	ComputeDraft(ctx context.Context, req ComputeDraftRequest) (PayrollRecordResponse, error)

	// OverrideDraft applies manual corrections to a draft and recomputes
	// only the figures downstream of each corrected field.
	OverrideDraft(ctx context.Context, req OverrideDraftRequest) (PayrollRecordResponse, error)

	// GetRecord retrieves a single payroll record
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)

	// ListRecords retrieves payroll records with filters
	ListRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecordResponse, int64, error)

	// Finalize commits a draft: flips it to paid and applies its loan and
	// advance deductions to the ledgers, all in one transaction. Calling
	// it again on a paid record is a no-op reporting already_finalized.
	Finalize(ctx context.Context, id string) (FinalizeResponse, error)

	// DeleteRecord removes an unpaid record
	DeleteRecord(ctx context.Context, id string) error
}
