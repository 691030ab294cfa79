package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
)

// allocateDeductions fits the requested deductions into gross pay in
// priority order: advance first, then provident fund, then loan. Each
// amount is capped by the gross left after the kinds before it, so a
// lean month shorts the loan installment before anything else. Manual
// overrides are requests like any other and pass through the same cap;
// total deductions never exceed gross pay.
func allocateDeductions(grossPay, advance, providentFund, loanInstallment decimal.Decimal) payroll.Deductions {
	remaining := decimal.Max(decimal.Zero, grossPay)

	take := func(requested decimal.Decimal) decimal.Decimal {
		amount := decimal.Min(remaining, decimal.Max(decimal.Zero, requested))
		remaining = remaining.Sub(amount)
		return amount
	}

	advanceAmount := take(advance)
	pfAmount := take(providentFund)
	loanAmount := take(loanInstallment)

	return payroll.Deductions{
		Loan:          loanAmount,
		Advance:       advanceAmount,
		ProvidentFund: pfAmount,
	}
}
