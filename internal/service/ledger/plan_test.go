package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagedesk/payroll-backend-go/internal/domain/advance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/loan"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func makeLoan(id string, principal, paid string) loan.Loan {
	return loan.Loan{
		ID:                  id,
		Principal:           dec(principal),
		PaidToDate:          dec(paid),
		InstallmentPerMonth: dec("1000"),
		Status:              loan.StatusApproved,
	}
}

func TestPlanLoanRepaymentsOldestFirst(t *testing.T) {
	loans := []loan.Loan{
		makeLoan("loan-old", "5000", "4500"),
		makeLoan("loan-new", "5000", "0"),
	}

	apps, err := planLoanRepayments(loans, dec("1000"), time.Now())
	require.NoError(t, err)
	require.Len(t, apps, 2)

	// Oldest loan absorbs its remaining 500; the rest spills into the next
	assert.Equal(t, "loan-old", apps[0].loan.ID)
	assert.True(t, apps[0].amount.Equal(dec("500")))
	assert.Equal(t, "loan-new", apps[1].loan.ID)
	assert.True(t, apps[1].amount.Equal(dec("500")))
	assert.True(t, apps[1].loan.PaidToDate.Equal(dec("500")))
}

func TestPlanLoanRepaymentsCompletionFlip(t *testing.T) {
	paidAt := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	loans := []loan.Loan{makeLoan("loan-1", "5000", "4500")}

	apps, err := planLoanRepayments(loans, dec("500"), paidAt)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	assert.Equal(t, loan.StatusCompleted, apps[0].loan.Status)
	require.NotNil(t, apps[0].loan.EndDate)
	assert.Equal(t, paidAt, *apps[0].loan.EndDate)
	assert.True(t, apps[0].loan.Outstanding().IsZero())
}

func TestPlanLoanRepaymentsPartialLeavesLoanOpen(t *testing.T) {
	loans := []loan.Loan{makeLoan("loan-1", "5000", "0")}

	apps, err := planLoanRepayments(loans, dec("1000"), time.Now())
	require.NoError(t, err)
	require.Len(t, apps, 1)

	assert.Equal(t, loan.StatusApproved, apps[0].loan.Status)
	assert.Nil(t, apps[0].loan.EndDate)
	assert.True(t, apps[0].loan.Outstanding().Equal(dec("4000")))
}

func TestPlanLoanRepaymentsOverpaymentRejected(t *testing.T) {
	loans := []loan.Loan{makeLoan("loan-1", "5000", "4500")}

	_, err := planLoanRepayments(loans, dec("501"), time.Now())
	assert.ErrorIs(t, err, loan.ErrLedgerInconsistency)
}

func TestPlanLoanRepaymentsNoLoans(t *testing.T) {
	_, err := planLoanRepayments(nil, dec("100"), time.Now())
	assert.ErrorIs(t, err, loan.ErrLedgerInconsistency)

	apps, err := planLoanRepayments(nil, decimal.Zero, time.Now())
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func makeAdvance(id string, amount, settled string) advance.Advance {
	return advance.Advance{
		ID:            id,
		Amount:        dec(amount),
		SettledAmount: dec(settled),
		Status:        advance.StatusApproved,
	}
}

func TestPlanAdvanceSettlementsOldestFirst(t *testing.T) {
	advances := []advance.Advance{
		makeAdvance("adv-old", "300", "100"),
		makeAdvance("adv-new", "400", "0"),
	}

	settlements, err := planAdvanceSettlements(advances, dec("500"))
	require.NoError(t, err)
	require.Len(t, settlements, 2)

	assert.True(t, settlements[0].amount.Equal(dec("200")))
	assert.Equal(t, advance.StatusSettled, settlements[0].advance.Status)
	assert.True(t, settlements[1].amount.Equal(dec("300")))
	assert.Equal(t, advance.StatusApproved, settlements[1].advance.Status)
	assert.True(t, settlements[1].advance.Outstanding().Equal(dec("100")))
}

func TestPlanAdvanceSettlementsOverpaymentRejected(t *testing.T) {
	advances := []advance.Advance{makeAdvance("adv-1", "300", "0")}

	_, err := planAdvanceSettlements(advances, dec("301"))
	assert.ErrorIs(t, err, advance.ErrLedgerInconsistency)
}
