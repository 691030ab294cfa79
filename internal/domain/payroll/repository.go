package payroll

import "context"

// PayrollRepository defines data access for payroll records.
// All methods include industryID to prevent cross-tenant data access.
type PayrollRepository interface {
	// Upsert creates the draft for (employee, period) or replaces its
	// computed figures. Fails with ErrRecordAlreadyPaid on a paid record.
	Upsert(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// GetByID retrieves a record with tenant isolation
	GetByID(ctx context.Context, id string, industryID string) (PayrollRecord, error)

	// GetByEmployeePeriod retrieves the record for one employee and month
	GetByEmployeePeriod(ctx context.Context, employeeID string, period Period, industryID string) (PayrollRecord, error)

	// GetForUpdate retrieves a record with a row lock. Only meaningful
	// inside a transaction; finalization uses it as its status guard.
	GetForUpdate(ctx context.Context, id string, industryID string) (PayrollRecord, error)

	// List retrieves records with filters and pagination
	List(ctx context.Context, filter PayrollFilter, industryID string) ([]PayrollRecord, int64, error)

	// Update replaces the figures of an existing draft/hold record
	Update(ctx context.Context, record PayrollRecord) error

	// MarkPaid flips draft/hold to paid and stamps paid_at/approved_by
	MarkPaid(ctx context.Context, id string, industryID string, paidBy string) error

	// Delete removes a record that has not been paid
	Delete(ctx context.Context, id string, industryID string) error
}
