package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/domain/advance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/loan"
)

// loanApplication is one loan's share of a finalized deduction: the loan
// with its ledger already advanced, and the amount taken from it.
type loanApplication struct {
	loan   loan.Loan
	amount decimal.Decimal
}

// planLoanRepayments distributes amount across loans oldest-first. Each
// application is capped by the loan's outstanding balance; a loan whose
// balance reaches zero is flipped to completed with paidAt as its end
// date. Amount left over after every loan is exhausted means the payroll
// figure and the ledger disagree, which is rejected rather than clamped.
func planLoanRepayments(loans []loan.Loan, amount decimal.Decimal, paidAt time.Time) ([]loanApplication, error) {
	var apps []loanApplication
	remaining := amount

	for _, l := range loans {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(remaining, l.Outstanding())
		if !take.IsPositive() {
			continue
		}

		l.PaidToDate = l.PaidToDate.Add(take)
		if l.Outstanding().IsZero() {
			l.Status = loan.StatusCompleted
			end := paidAt
			l.EndDate = &end
		}

		apps = append(apps, loanApplication{loan: l, amount: take})
		remaining = remaining.Sub(take)
	}

	// Leftover amount means the deduction outran every open loan. The
	// stale figure has to be recomputed, not silently shrunk here.
	if remaining.IsPositive() {
		return nil, loan.ErrLedgerInconsistency
	}
	return apps, nil
}

// advanceSettlement is one advance's share of a finalized deduction.
type advanceSettlement struct {
	advance advance.Advance
	amount  decimal.Decimal
}

// planAdvanceSettlements distributes amount across advances oldest-first,
// flipping an advance to settled when fully recovered. Same overpayment
// rule as loans: leftover amount is an inconsistency, not a clamp.
func planAdvanceSettlements(advances []advance.Advance, amount decimal.Decimal) ([]advanceSettlement, error) {
	var settlements []advanceSettlement
	remaining := amount

	for _, a := range advances {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(remaining, a.Outstanding())
		if !take.IsPositive() {
			continue
		}

		a.SettledAmount = a.SettledAmount.Add(take)
		if a.Outstanding().IsZero() {
			a.Status = advance.StatusSettled
		}

		settlements = append(settlements, advanceSettlement{advance: a, amount: take})
		remaining = remaining.Sub(take)
	}

	// Same as loans: reject the stale figure instead of shrinking it
	if remaining.IsPositive() {
		return nil, advance.ErrLedgerInconsistency
	}
	return settlements, nil
}
