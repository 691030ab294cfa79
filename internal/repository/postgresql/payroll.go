package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `pr.id, pr.industry_id, pr.employee_id, pr.period_year, pr.period_month,
	   pr.working_days, pr.days_present, pr.days_absent, pr.hours_worked, pr.overtime_hours,
	   pr.basic_pay, pr.other_allowance, pr.food_allowance, pr.gross_pay,
	   pr.loan_deduction, pr.advance_deduction, pr.pf_deduction, pr.total_deduction, pr.net_pay,
	   pr.status, pr.payment_method, pr.remark, pr.approved_by, pr.paid_at, pr.created_at, pr.updated_at`

func columnsWithoutAlias(cols string) string {
	return strings.ReplaceAll(cols, "pr.", "")
}

func scanPayrollRecord(row pgx.Row, withEmployeeName bool) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var year, month int

	dest := []interface{}{
		&rec.ID, &rec.IndustryID, &rec.EmployeeID, &year, &month,
		&rec.WorkingDays, &rec.DaysPresent, &rec.DaysAbsent, &rec.HoursWorked, &rec.OvertimeHours,
		&rec.BasicPay, &rec.OtherAllowance, &rec.FoodAllowance, &rec.GrossPay,
		&rec.Deductions.Loan, &rec.Deductions.Advance, &rec.Deductions.ProvidentFund, &rec.TotalDeduction, &rec.NetPay,
		&rec.Status, &rec.PaymentMethod, &rec.Remark, &rec.ApprovedBy, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if withEmployeeName {
		dest = append(dest, &rec.EmployeeName)
	}

	if err := row.Scan(dest...); err != nil {
		return payroll.PayrollRecord{}, err
	}

	rec.PeriodMonth = payroll.Period{Year: year, Month: time.Month(month)}
	return rec, nil
}

func (r *payrollRepository) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	// The WHERE guard keeps a paid record untouched: the conflicting
	// update matches no row, Scan sees no rows, and the caller gets
	// ErrRecordAlreadyPaid
	query := fmt.Sprintf(`
		INSERT INTO payroll_records (
			industry_id, employee_id, period_year, period_month,
			working_days, days_present, days_absent, hours_worked, overtime_hours,
			basic_pay, other_allowance, food_allowance, gross_pay,
			loan_deduction, advance_deduction, pf_deduction, total_deduction, net_pay, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (industry_id, employee_id, period_year, period_month) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			days_present = EXCLUDED.days_present,
			days_absent = EXCLUDED.days_absent,
			hours_worked = EXCLUDED.hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			basic_pay = EXCLUDED.basic_pay,
			other_allowance = EXCLUDED.other_allowance,
			food_allowance = EXCLUDED.food_allowance,
			gross_pay = EXCLUDED.gross_pay,
			loan_deduction = EXCLUDED.loan_deduction,
			advance_deduction = EXCLUDED.advance_deduction,
			pf_deduction = EXCLUDED.pf_deduction,
			total_deduction = EXCLUDED.total_deduction,
			net_pay = EXCLUDED.net_pay,
			status = EXCLUDED.status,
			updated_at = NOW()
		WHERE payroll_records.status != 'paid'
		RETURNING %s
	`, columnsWithoutAlias(payrollColumns))

	row := q.QueryRow(ctx, query,
		record.IndustryID, record.EmployeeID, record.PeriodMonth.Year, int(record.PeriodMonth.Month),
		record.WorkingDays, record.DaysPresent, record.DaysAbsent, record.HoursWorked, record.OvertimeHours,
		record.BasicPay, record.OtherAllowance, record.FoodAllowance, record.GrossPay,
		record.Deductions.Loan, record.Deductions.Advance, record.Deductions.ProvidentFund,
		record.TotalDeduction, record.NetPay, record.Status,
	)

	rec, err := scanPayrollRecord(row, false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrRecordAlreadyPaid
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string, industryID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.full_name as employee_name
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1 AND pr.industry_id = $2
	`, payrollColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id, industryID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, period payroll.Period, industryID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records pr
		WHERE pr.employee_id = $1 AND pr.period_year = $2 AND pr.period_month = $3
		  AND pr.industry_id = $4
	`, payrollColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, period.Year, int(period.Month), industryID), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetForUpdate(ctx context.Context, id string, industryID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records pr
		WHERE pr.id = $1 AND pr.industry_id = $2
		FOR UPDATE
	`, payrollColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id, industryID), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to lock payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter, industryID string) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.industry_id = $1
	`
	args := []interface{}{industryID}
	argIdx := 2

	if filter.EmployeeID != "" {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodMonth != "" {
		if period, err := payroll.ParsePeriod(filter.PeriodMonth); err == nil {
			baseQuery += fmt.Sprintf(" AND pr.period_year = $%d AND pr.period_month = $%d", argIdx, argIdx+1)
			args = append(args, period.Year, int(period.Month))
			argIdx += 2
		}
	}
	if filter.Status != "" {
		baseQuery += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.full_name as employee_name
		%s
		ORDER BY pr.period_year DESC, pr.period_month DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, payrollColumns, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

func (r *payrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET days_present = $3, days_absent = $4, hours_worked = $5, overtime_hours = $6,
			basic_pay = $7, other_allowance = $8, food_allowance = $9, gross_pay = $10,
			loan_deduction = $11, advance_deduction = $12, pf_deduction = $13,
			total_deduction = $14, net_pay = $15, status = $16, payment_method = $17,
			remark = $18, updated_at = NOW()
		WHERE id = $1 AND industry_id = $2 AND status != 'paid'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.ID, record.IndustryID,
		record.DaysPresent, record.DaysAbsent, record.HoursWorked, record.OvertimeHours,
		record.BasicPay, record.OtherAllowance, record.FoodAllowance, record.GrossPay,
		record.Deductions.Loan, record.Deductions.Advance, record.Deductions.ProvidentFund,
		record.TotalDeduction, record.NetPay, record.Status, record.PaymentMethod, record.Remark,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrRecordAlreadyPaid
		}
		return fmt.Errorf("failed to update payroll record: %w", err)
	}

	return nil
}

func (r *payrollRepository) MarkPaid(ctx context.Context, id string, industryID string, paidBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'paid', paid_at = NOW(), approved_by = $3, updated_at = NOW()
		WHERE id = $1 AND industry_id = $2 AND status != 'paid'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, industryID, paidBy).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrRecordAlreadyPaid
		}
		return fmt.Errorf("failed to mark payroll record paid: %w", err)
	}

	return nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string, industryID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payroll_records
		WHERE id = $1 AND industry_id = $2 AND status != 'paid'
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, industryID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrCannotDeletePaidRecord
		}
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	return nil
}
