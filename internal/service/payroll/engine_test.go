package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/ledger"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
)

func testInput() computeInput {
	return computeInput{
		rate: employee.Rate{
			RatePerDay:      dec("800"),
			DailyOtherRate:  dec("50"),
			DailyFoodRate:   dec("30"),
			MonthlyPFAmount: dec("300"),
		},
		dues: ledger.Dues{
			LoanDue:    dec("1000"),
			AdvanceDue: dec("500"),
		},
	}
}

func testSummary() attendance.Summary {
	return attendance.Summary{
		WorkingDays:   21,
		DaysPresent:   dec("20"),
		DaysAbsent:    dec("1"),
		HoursWorked:   dec("164"),
		OvertimeHours: dec("4"),
	}
}

func TestRecomputeFullPipeline(t *testing.T) {
	var rec payroll.PayrollRecord
	applySummary(&rec, testSummary())
	recomputeFrom(&rec, stagePay, testInput(), pinnedFields{})

	// 164h / 8 * 800 = 16400
	assert.True(t, rec.BasicPay.Equal(dec("16400")), "basicPay = %s", rec.BasicPay)
	assert.True(t, rec.OtherAllowance.Equal(dec("1000")), "otherAllowance = %s", rec.OtherAllowance)
	assert.True(t, rec.FoodAllowance.Equal(dec("600")), "foodAllowance = %s", rec.FoodAllowance)
	assert.True(t, rec.GrossPay.Equal(dec("18000")), "grossPay = %s", rec.GrossPay)
	assert.True(t, rec.Deductions.Advance.Equal(dec("500")))
	assert.True(t, rec.Deductions.ProvidentFund.Equal(dec("300")))
	assert.True(t, rec.Deductions.Loan.Equal(dec("1000")))
	assert.True(t, rec.TotalDeduction.Equal(dec("1800")))
	assert.True(t, rec.NetPay.Equal(dec("16200")), "netPay = %s", rec.NetPay)
}

func TestBasicPayDayFallback(t *testing.T) {
	// No hour data: pay falls back to the day count
	got := basicPayFor(decimal.Zero, dec("20"), dec("800"))
	assert.True(t, got.Equal(dec("16000")), "basicPay = %s", got)

	got = basicPayFor(dec("164"), dec("20"), dec("800"))
	assert.True(t, got.Equal(dec("16400")), "basicPay = %s", got)
}

func TestRecomputeNetFloorsAtZero(t *testing.T) {
	var rec payroll.PayrollRecord
	applySummary(&rec, attendance.Summary{
		WorkingDays: 21,
		DaysPresent: dec("1"),
		DaysAbsent:  dec("20"),
		HoursWorked: dec("8"),
	})

	in := testInput()
	in.dues.AdvanceDue = dec("5000")
	recomputeFrom(&rec, stagePay, in, pinnedFields{})

	// Gross 880 is swallowed whole by the advance
	assert.True(t, rec.GrossPay.Equal(dec("880")))
	assert.True(t, rec.Deductions.Advance.Equal(dec("880")))
	assert.True(t, rec.NetPay.IsZero(), "netPay = %s", rec.NetPay)
}

func TestRecomputeFromGrossKeepsUpstreamFigures(t *testing.T) {
	var rec payroll.PayrollRecord
	applySummary(&rec, testSummary())
	recomputeFrom(&rec, stagePay, testInput(), pinnedFields{})

	// Override basic pay: attendance figures and allowances must not move
	rec.BasicPay = dec("10000")
	recomputeFrom(&rec, stageGross, testInput(), pinnedFields{basicPay: true})

	assert.True(t, rec.HoursWorked.Equal(dec("164")))
	assert.True(t, rec.BasicPay.Equal(dec("10000")))
	assert.True(t, rec.OtherAllowance.Equal(dec("1000")))
	assert.True(t, rec.GrossPay.Equal(dec("11600")), "grossPay = %s", rec.GrossPay)
	assert.True(t, rec.NetPay.Equal(dec("9800")), "netPay = %s", rec.NetPay)
}

func TestRecomputeDeductionOverrideKeepsUpstream(t *testing.T) {
	var rec payroll.PayrollRecord
	applySummary(&rec, testSummary())
	recomputeFrom(&rec, stagePay, testInput(), pinnedFields{})

	// Override only the loan deduction: gross stays, the other kinds
	// re-run against the ledger, total and net follow
	rec.Deductions.Loan = dec("200")
	recomputeFrom(&rec, stageDeductions, testInput(), pinnedFields{loanDeduction: true})

	assert.True(t, rec.GrossPay.Equal(dec("18000")))
	assert.True(t, rec.Deductions.Advance.Equal(dec("500")))
	assert.True(t, rec.Deductions.Loan.Equal(dec("200")))
	assert.True(t, rec.TotalDeduction.Equal(dec("1000")))
	assert.True(t, rec.NetPay.Equal(dec("17000")), "netPay = %s", rec.NetPay)
}

func TestRecomputeDeductionOverrideCappedAtGross(t *testing.T) {
	var rec payroll.PayrollRecord
	applySummary(&rec, testSummary())
	recomputeFrom(&rec, stagePay, testInput(), pinnedFields{})

	// An overridden deduction is still a request: it cannot push total
	// deductions past gross pay
	rec.Deductions.Advance = dec("25000")
	recomputeFrom(&rec, stageDeductions, testInput(), pinnedFields{advanceDeduction: true})

	assert.True(t, rec.GrossPay.Equal(dec("18000")))
	assert.True(t, rec.Deductions.Advance.Equal(dec("18000")), "advance = %s", rec.Deductions.Advance)
	assert.True(t, rec.Deductions.ProvidentFund.IsZero())
	assert.True(t, rec.Deductions.Loan.IsZero())
	assert.True(t, rec.TotalDeduction.Equal(rec.GrossPay))
	assert.True(t, rec.NetPay.IsZero(), "netPay = %s", rec.NetPay)
}

func TestRecomputePinnedDeductionSurvivesReallocation(t *testing.T) {
	var rec payroll.PayrollRecord
	applySummary(&rec, testSummary())
	recomputeFrom(&rec, stagePay, testInput(), pinnedFields{})

	// Pin the loan deduction, then trigger a recompute upstream of the
	// allocation stage: the pinned figure must come through unchanged
	rec.Deductions.Loan = dec("250")
	rec.BasicPay = dec("10000")
	recomputeFrom(&rec, stageGross, testInput(), pinnedFields{basicPay: true, loanDeduction: true})

	assert.True(t, rec.Deductions.Loan.Equal(dec("250")))
	assert.True(t, rec.Deductions.Advance.Equal(dec("500")))
	assert.True(t, rec.Deductions.ProvidentFund.Equal(dec("300")))
}
