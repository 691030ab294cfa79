package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/ledger"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
)

type fakePayrollRepo struct {
	records map[string]payroll.PayrollRecord
	updated *payroll.PayrollRecord
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]payroll.PayrollRecord)}
}

func (f *fakePayrollRepo) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id, industryID string) (payroll.PayrollRecord, error) {
	rec, ok := f.records[id]
	if !ok || rec.IndustryID != industryID {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, period payroll.Period, industryID string) (payroll.PayrollRecord, error) {
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) GetForUpdate(ctx context.Context, id, industryID string) (payroll.PayrollRecord, error) {
	return f.GetByID(ctx, id, industryID)
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter, industryID string) ([]payroll.PayrollRecord, int64, error) {
	return nil, 0, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, record payroll.PayrollRecord) error {
	f.records[record.ID] = record
	f.updated = &record
	return nil
}

func (f *fakePayrollRepo) MarkPaid(ctx context.Context, id, industryID, paidBy string) error {
	return nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, id, industryID string) error { return nil }

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id, industryID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.IndustryID != industryID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByIndustryID(ctx context.Context, industryID string) ([]employee.Employee, error) {
	return nil, nil
}

type fakeLedgerService struct {
	dues ledger.Dues
}

func (f *fakeLedgerService) DuesFor(ctx context.Context, industryID, employeeID string, month time.Time) (ledger.Dues, error) {
	return f.dues, nil
}

func (f *fakeLedgerService) ApplyDeductions(ctx context.Context, industryID, employeeID, payrollRecordID string, month time.Time, loanAmount, advanceAmount decimal.Decimal) error {
	return nil
}

func authedContext(t *testing.T) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"industry_id": "ind-1",
		"user_id":     "user-1",
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func seededService(t *testing.T) (payroll.PayrollService, *fakePayrollRepo) {
	payrollRepo := newFakePayrollRepo()

	rec := payroll.PayrollRecord{
		ID:          "rec-1",
		IndustryID:  "ind-1",
		EmployeeID:  "emp-1",
		PeriodMonth: payroll.Period{Year: 2025, Month: time.June},
	}
	applySummary(&rec, testSummary())
	recomputeFrom(&rec, stagePay, testInput(), pinnedFields{})
	rec.Status = payroll.StatusDraft
	payrollRepo.records[rec.ID] = rec

	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:                 "emp-1",
			IndustryID:         "ind-1",
			FullName:           "Test Worker",
			SalaryPerDay:       dec("800"),
			PFAmount:           dec("300"),
			RegularExpenseRate: dec("50"),
			FoodExpenseRate:    dec("30"),
		},
	}}
	ledgerSvc := &fakeLedgerService{dues: ledger.Dues{LoanDue: dec("1000"), AdvanceDue: dec("500")}}

	svc := NewPayrollService(payrollRepo, employeeRepo, nil, ledgerSvc, nil)
	return svc, payrollRepo
}

func TestOverrideDraftDeductionCappedAtGross(t *testing.T) {
	svc, payrollRepo := seededService(t)
	ctx := authedContext(t)

	// An advance override far past gross must come back capped, never
	// persisted with total deductions above gross pay
	override := dec("25000")
	resp, err := svc.OverrideDraft(ctx, payroll.OverrideDraftRequest{
		ID:               "rec-1",
		AdvanceDeduction: &override,
	})
	require.NoError(t, err)

	assert.True(t, resp.GrossPay.Equal(dec("18000")), "grossPay = %s", resp.GrossPay)
	assert.True(t, resp.AdvanceDeduction.Equal(dec("18000")), "advance = %s", resp.AdvanceDeduction)
	assert.True(t, resp.LoanDeduction.IsZero())
	assert.True(t, resp.PFDeduction.IsZero())
	assert.True(t, resp.TotalDeduction.Equal(resp.GrossPay))
	assert.True(t, resp.NetPay.IsZero(), "netPay = %s", resp.NetPay)

	require.NotNil(t, payrollRepo.updated)
	assert.True(t, payrollRepo.updated.TotalDeduction.LessThanOrEqual(payrollRepo.updated.GrossPay),
		"persisted total %s exceeds gross %s", payrollRepo.updated.TotalDeduction, payrollRepo.updated.GrossPay)
}

func TestOverrideDraftDeductionRerunsAllocator(t *testing.T) {
	svc, payrollRepo := seededService(t)
	ctx := authedContext(t)

	// A loan-only override re-runs the allocation stage: the other kinds
	// come from the ledger, gross and the pay components stay put
	override := dec("200")
	resp, err := svc.OverrideDraft(ctx, payroll.OverrideDraftRequest{
		ID:            "rec-1",
		LoanDeduction: &override,
	})
	require.NoError(t, err)

	assert.True(t, resp.BasicPay.Equal(dec("16400")))
	assert.True(t, resp.GrossPay.Equal(dec("18000")))
	assert.True(t, resp.LoanDeduction.Equal(dec("200")))
	assert.True(t, resp.AdvanceDeduction.Equal(dec("500")))
	assert.True(t, resp.PFDeduction.Equal(dec("300")))
	assert.True(t, resp.TotalDeduction.Equal(dec("1000")))
	assert.True(t, resp.NetPay.Equal(dec("17000")), "netPay = %s", resp.NetPay)

	require.NotNil(t, payrollRepo.updated)
	assert.True(t, payrollRepo.updated.TotalDeduction.LessThanOrEqual(payrollRepo.updated.GrossPay))
}
