package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/ledger"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
)

// computeStage orders the computation pipeline. Recomputation only ever
// runs forward: a stage reads the figures before it as they stand,
// whether they came from aggregation or a manual override.
type computeStage int

const (
	stagePay computeStage = iota
	stageGross
	stageDeductions
	stageNet
)

var eightHours = decimal.NewFromInt(8)

// computeInput is the snapshot a recompute runs against. It is read,
// never written; the record carries all mutable state.
type computeInput struct {
	rate employee.Rate
	dues ledger.Dues
}

// pinnedFields marks figures set by hand this round. A pinned pay
// component is never recomputed, even when its stage re-runs; a pinned
// deduction replaces the ledger's requested amount but still goes
// through the allocator's gross cap.
type pinnedFields struct {
	basicPay         bool
	otherAllowance   bool
	foodAllowance    bool
	loanDeduction    bool
	advanceDeduction bool
	pfDeduction      bool
}

// applySummary loads the attendance figures into the record. This is
// the head of the pipeline; everything after it derives from these.
func applySummary(rec *payroll.PayrollRecord, sum attendance.Summary) {
	rec.WorkingDays = sum.WorkingDays
	rec.DaysPresent = sum.DaysPresent
	rec.DaysAbsent = sum.DaysAbsent
	rec.HoursWorked = sum.HoursWorked
	rec.OvertimeHours = sum.OvertimeHours
}

// recomputeFrom re-runs the pipeline from the given stage onward.
func recomputeFrom(rec *payroll.PayrollRecord, from computeStage, in computeInput, pin pinnedFields) {
	if from <= stagePay {
		if !pin.basicPay {
			rec.BasicPay = basicPayFor(rec.HoursWorked, rec.DaysPresent, in.rate.RatePerDay)
		}
		if !pin.otherAllowance {
			rec.OtherAllowance = rec.DaysPresent.Mul(in.rate.DailyOtherRate).Round(2)
		}
		if !pin.foodAllowance {
			rec.FoodAllowance = rec.DaysPresent.Mul(in.rate.DailyFoodRate).Round(2)
		}
	}

	if from <= stageGross {
		rec.GrossPay = rec.BasicPay.Add(rec.OtherAllowance).Add(rec.FoodAllowance)
	}

	if from <= stageDeductions {
		advance := in.dues.AdvanceDue
		if pin.advanceDeduction {
			advance = rec.Deductions.Advance
		}
		pf := in.rate.MonthlyPFAmount
		if pin.pfDeduction {
			pf = rec.Deductions.ProvidentFund
		}
		loanInstallment := in.dues.LoanDue
		if pin.loanDeduction {
			loanInstallment = rec.Deductions.Loan
		}
		rec.Deductions = allocateDeductions(rec.GrossPay, advance, pf, loanInstallment)
	}

	if from <= stageNet {
		rec.TotalDeduction = rec.Deductions.Total()
		rec.NetPay = decimal.Max(decimal.Zero, rec.GrossPay.Sub(rec.TotalDeduction))
	}
}

// basicPayFor prefers the hour ledger when it carries data; the day
// count is the fallback for day-granular attendance.
func basicPayFor(hoursWorked, daysPresent, ratePerDay decimal.Decimal) decimal.Decimal {
	if hoursWorked.IsPositive() {
		return hoursWorked.Div(eightHours).Mul(ratePerDay).Round(2)
	}
	return daysPresent.Mul(ratePerDay).Round(2)
}
