package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceStatus enum
type AdvanceStatus string

const (
	StatusPending  AdvanceStatus = "pending"
	StatusApproved AdvanceStatus = "approved"
	StatusRejected AdvanceStatus = "rejected"
	StatusSettled  AdvanceStatus = "settled"
)

// Advance is a salary advance paid out ahead of a month's payroll and
// recovered from it. SettledAmount only ever grows, and only through
// finalization; the advance flips to settled when it reaches Amount.
type Advance struct {
	ID            string
	IndustryID    string
	EmployeeID    string
	RequestedDate time.Time
	Amount        decimal.Decimal
	Month         time.Time // first day of the salary month the advance is drawn against
	SettledAmount decimal.Decimal
	Status        AdvanceStatus
	Reason        *string
	PaymentMethod *string
	ApprovedBy    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}

// Outstanding is the unrecovered portion of the advance.
func (a Advance) Outstanding() decimal.Decimal {
	return a.Amount.Sub(a.SettledAmount)
}
