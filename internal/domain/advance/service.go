package advance

import "context"

// AdvanceService defines advance request and approval logic. Settlement
// writes are owned by the finalization flow, not here.
type AdvanceService interface {
	// CreateAdvance registers an advance request in pending status
	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)

	// GetAdvance retrieves a single advance
	GetAdvance(ctx context.Context, id string) (AdvanceResponse, error)

	// ListAdvances retrieves advances with filters
	ListAdvances(ctx context.Context, filter AdvanceFilter) ([]AdvanceResponse, int64, error)

	// UpdateAdvanceStatus approves or rejects a pending advance
	UpdateAdvanceStatus(ctx context.Context, req UpdateAdvanceStatusRequest) (AdvanceResponse, error)
}
