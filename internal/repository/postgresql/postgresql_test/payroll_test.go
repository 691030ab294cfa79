package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagedesk/payroll-backend-go/internal/domain/advance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/loan"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
	"github.com/wagedesk/payroll-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	}
	os.Exit(m.Run())
}

// requireDB skips repository tests when no test database is configured
func requireDB(t *testing.T) {
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func cleanupTestData(t *testing.T) {
	ctx := context.Background()

	_, err := testDB.Exec(ctx, "TRUNCATE TABLE loan_repayments, loans, advance_salaries, payroll_records, attendance_records, calendar_days, employees CASCADE")
	require.NoError(t, err)
}

func createTestEmployee(t *testing.T, ctx context.Context, industryID string) string {
	var employeeID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO employees (
			id, industry_id, full_name, joining_date, salary_per_day,
			pf_amount, regular_expense_rate, food_expense_rate, work_type,
			created_at, updated_at
		)
		VALUES (gen_random_uuid(), $1, 'Test Worker', '2024-01-15', 800, 300, 50, 30, 'full_time', NOW(), NOW())
		RETURNING id
	`, industryID).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func draftRecord(industryID, employeeID string, period payroll.Period) payroll.PayrollRecord {
	return payroll.PayrollRecord{
		IndustryID:     industryID,
		EmployeeID:     employeeID,
		PeriodMonth:    period,
		WorkingDays:    22,
		DaysPresent:    decimal.NewFromInt(20),
		DaysAbsent:     decimal.NewFromInt(2),
		HoursWorked:    decimal.NewFromInt(160),
		OvertimeHours:  decimal.Zero,
		BasicPay:       decimal.NewFromInt(16000),
		OtherAllowance: decimal.NewFromInt(1000),
		FoodAllowance:  decimal.NewFromInt(600),
		GrossPay:       decimal.NewFromInt(17600),
		Deductions: payroll.Deductions{
			Loan:          decimal.NewFromInt(1000),
			Advance:       decimal.NewFromInt(500),
			ProvidentFund: decimal.NewFromInt(300),
		},
		TotalDeduction: decimal.NewFromInt(1800),
		NetPay:         decimal.NewFromInt(15800),
		Status:         payroll.StatusDraft,
	}
}

const testIndustryID = "11111111-1111-1111-1111-111111111111"

func TestPayrollRepository_Upsert_CreatesAndReplaces(t *testing.T) {
	requireDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, testIndustryID)
	payrollRepo := postgresql.NewPayrollRepository(testDB)

	period := payroll.Period{Year: 2025, Month: time.June}

	created, err := payrollRepo.Upsert(ctx, draftRecord(testIndustryID, employeeID, period))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, payroll.StatusDraft, created.Status)
	assert.True(t, created.NetPay.Equal(decimal.NewFromInt(15800)))

	// Recompute replaces the figures on the same row
	recomputed := draftRecord(testIndustryID, employeeID, period)
	recomputed.DaysPresent = decimal.NewFromInt(21)
	recomputed.HoursWorked = decimal.NewFromInt(168)
	recomputed.BasicPay = decimal.NewFromInt(16800)
	recomputed.GrossPay = decimal.NewFromInt(18400)
	recomputed.NetPay = decimal.NewFromInt(16600)

	replaced, err := payrollRepo.Upsert(ctx, recomputed)
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.True(t, replaced.NetPay.Equal(decimal.NewFromInt(16600)))
}

func TestPayrollRepository_Upsert_PaidRecordRejected(t *testing.T) {
	requireDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, testIndustryID)
	payrollRepo := postgresql.NewPayrollRepository(testDB)

	period := payroll.Period{Year: 2025, Month: time.June}

	created, err := payrollRepo.Upsert(ctx, draftRecord(testIndustryID, employeeID, period))
	require.NoError(t, err)

	err = payrollRepo.MarkPaid(ctx, created.ID, testIndustryID, "admin-1")
	require.NoError(t, err)

	_, err = payrollRepo.Upsert(ctx, draftRecord(testIndustryID, employeeID, period))
	assert.ErrorIs(t, err, payroll.ErrRecordAlreadyPaid)
}

func TestPayrollRepository_MarkPaid_SecondCallRejected(t *testing.T) {
	requireDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, testIndustryID)
	payrollRepo := postgresql.NewPayrollRepository(testDB)

	created, err := payrollRepo.Upsert(ctx, draftRecord(testIndustryID, employeeID, payroll.Period{Year: 2025, Month: time.June}))
	require.NoError(t, err)

	require.NoError(t, payrollRepo.MarkPaid(ctx, created.ID, testIndustryID, "admin-1"))

	err = payrollRepo.MarkPaid(ctx, created.ID, testIndustryID, "admin-2")
	assert.ErrorIs(t, err, payroll.ErrRecordAlreadyPaid)

	paid, err := payrollRepo.GetByID(ctx, created.ID, testIndustryID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, paid.Status)
	require.NotNil(t, paid.ApprovedBy)
	assert.Equal(t, "admin-1", *paid.ApprovedBy)
	assert.NotNil(t, paid.PaidAt)
}

func TestPayrollRepository_Delete_PaidRecordRejected(t *testing.T) {
	requireDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, testIndustryID)
	payrollRepo := postgresql.NewPayrollRepository(testDB)

	created, err := payrollRepo.Upsert(ctx, draftRecord(testIndustryID, employeeID, payroll.Period{Year: 2025, Month: time.June}))
	require.NoError(t, err)

	require.NoError(t, payrollRepo.MarkPaid(ctx, created.ID, testIndustryID, "admin-1"))

	err = payrollRepo.Delete(ctx, created.ID, testIndustryID)
	assert.ErrorIs(t, err, payroll.ErrCannotDeletePaidRecord)

	draft, err := payrollRepo.Upsert(ctx, draftRecord(testIndustryID, employeeID, payroll.Period{Year: 2025, Month: time.July}))
	require.NoError(t, err)
	assert.NoError(t, payrollRepo.Delete(ctx, draft.ID, testIndustryID))

	_, err = payrollRepo.GetByID(ctx, draft.ID, testIndustryID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestLoanRepository_UpdateLedger_CompletesLoan(t *testing.T) {
	requireDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, testIndustryID)
	loanRepo := postgresql.NewLoanRepository(testDB)
	payrollRepo := postgresql.NewPayrollRepository(testDB)

	created, err := loanRepo.Create(ctx, loan.Loan{
		IndustryID:          testIndustryID,
		EmployeeID:          employeeID,
		ApplicationDate:     time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		Principal:           decimal.NewFromInt(5000),
		StartDate:           time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		TotalInstallments:   5,
		InstallmentPerMonth: decimal.NewFromInt(1000),
		Status:              loan.StatusApproved,
	})
	require.NoError(t, err)

	rec, err := payrollRepo.Upsert(ctx, draftRecord(testIndustryID, employeeID, payroll.Period{Year: 2025, Month: time.June}))
	require.NoError(t, err)

	// Last installment: paid_to_date reaches principal and the loan closes
	endDate := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	created.PaidToDate = decimal.NewFromInt(5000)
	created.Status = loan.StatusCompleted
	created.EndDate = &endDate
	require.NoError(t, loanRepo.UpdateLedger(ctx, created))

	_, err = loanRepo.CreateRepayment(ctx, loan.RepaymentEntry{
		LoanID:          created.ID,
		PayrollRecordID: rec.ID,
		Amount:          decimal.NewFromInt(1000),
		SalaryMonth:     "2025-06",
		PaidAt:          endDate,
	})
	require.NoError(t, err)

	updated, err := loanRepo.GetByID(ctx, created.ID, testIndustryID)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusCompleted, updated.Status)
	assert.True(t, updated.PaidToDate.Equal(decimal.NewFromInt(5000)))
	assert.NotNil(t, updated.EndDate)

	// Completed loans no longer accrue dues
	active, err := loanRepo.GetActiveByEmployee(ctx, employeeID, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), testIndustryID)
	require.NoError(t, err)
	assert.Empty(t, active)

	history, err := loanRepo.GetRepaymentsByLoan(ctx, created.ID, testIndustryID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, rec.ID, history[0].PayrollRecordID)
	assert.Equal(t, "2025-06", history[0].SalaryMonth)
}

func TestLoanRepository_GetActiveByEmployee_SkipsEndedLoans(t *testing.T) {
	requireDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, testIndustryID)
	loanRepo := postgresql.NewLoanRepository(testDB)

	created, err := loanRepo.Create(ctx, loan.Loan{
		IndustryID:          testIndustryID,
		EmployeeID:          employeeID,
		ApplicationDate:     time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		Principal:           decimal.NewFromInt(5000),
		StartDate:           time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		TotalInstallments:   5,
		InstallmentPerMonth: decimal.NewFromInt(1000),
		Status:              loan.StatusApproved,
	})
	require.NoError(t, err)

	// An approved loan with an end date in the past must not accrue
	// dues, whatever set the end date
	_, err = testDB.Exec(ctx, "UPDATE loans SET end_date = '2025-04-30' WHERE id = $1", created.ID)
	require.NoError(t, err)

	active, err := loanRepo.GetActiveByEmployee(ctx, employeeID, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), testIndustryID)
	require.NoError(t, err)
	assert.Empty(t, active)

	active, err = loanRepo.GetActiveByEmployee(ctx, employeeID, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), testIndustryID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestAdvanceRepository_UpdateLedger_SettlesAdvance(t *testing.T) {
	requireDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, testIndustryID)
	advanceRepo := postgresql.NewAdvanceRepository(testDB)

	created, err := advanceRepo.Create(ctx, advance.Advance{
		IndustryID:    testIndustryID,
		EmployeeID:    employeeID,
		RequestedDate: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(500),
		Month:         time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:        advance.StatusApproved,
	})
	require.NoError(t, err)

	created.SettledAmount = decimal.NewFromInt(500)
	created.Status = advance.StatusSettled
	require.NoError(t, advanceRepo.UpdateLedger(ctx, created))

	updated, err := advanceRepo.GetByID(ctx, created.ID, testIndustryID)
	require.NoError(t, err)
	assert.Equal(t, advance.StatusSettled, updated.Status)
	assert.True(t, updated.Outstanding().IsZero())

	outstanding, err := advanceRepo.GetOutstandingByEmployee(ctx, employeeID, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), testIndustryID)
	require.NoError(t, err)
	assert.Empty(t, outstanding)
}
