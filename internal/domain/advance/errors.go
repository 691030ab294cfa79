package advance

import "errors"

var (
	ErrAdvanceNotFound   = errors.New("advance salary not found")
	ErrAdvanceNotPending = errors.New("advance salary is not pending approval")

	// ErrLedgerInconsistency means a settlement would push settled_amount
	// past the requested amount. Rejected, never clamped.
	ErrLedgerInconsistency = errors.New("advance settlement exceeds outstanding amount")
)
