package advance

import (
	"context"
	"time"
)

// AdvanceRepository defines data access for salary advances.
// All methods include industryID to prevent cross-tenant data access.
// Writes to settled_amount happen only through UpdateLedger, which the
// finalization transaction is the sole caller of.
type AdvanceRepository interface {
	// Create creates a new advance request
	Create(ctx context.Context, advance Advance) (Advance, error)

	// GetByID retrieves an advance with tenant isolation
	GetByID(ctx context.Context, id string, industryID string) (Advance, error)

	// GetOutstandingByEmployee retrieves approved advances with an unsettled
	// balance drawn against the given month or earlier, oldest first
	GetOutstandingByEmployee(ctx context.Context, employeeID string, asOfMonth time.Time, industryID string) ([]Advance, error)

	// List retrieves advances with filters and pagination
	List(ctx context.Context, filter AdvanceFilter, industryID string) ([]Advance, int64, error)

	// UpdateStatus approves or rejects a pending advance
	UpdateStatus(ctx context.Context, id string, industryID string, status AdvanceStatus, approvedBy string) error

	// UpdateLedger persists a settlement: new settled_amount plus the
	// status flip when the advance is fully recovered
	UpdateLedger(ctx context.Context, advance Advance) error
}
