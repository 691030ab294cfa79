package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/loan"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (
			industry_id, employee_id, application_date, principal, start_date,
			total_installments, installment_per_month, status, purpose,
			disbursement_method, remark
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, industry_id, employee_id, application_date, principal, start_date,
			end_date, total_installments, installment_per_month, status, paid_to_date,
			purpose, disbursement_method, approved_by, remark, created_at, updated_at
	`

	var created loan.Loan
	err := q.QueryRow(ctx, query,
		l.IndustryID, l.EmployeeID, l.ApplicationDate, l.Principal, l.StartDate,
		l.TotalInstallments, l.InstallmentPerMonth, l.Status, l.Purpose,
		l.DisbursementMethod, l.Remark,
	).Scan(
		&created.ID, &created.IndustryID, &created.EmployeeID, &created.ApplicationDate, &created.Principal, &created.StartDate,
		&created.EndDate, &created.TotalInstallments, &created.InstallmentPerMonth, &created.Status, &created.PaidToDate,
		&created.Purpose, &created.DisbursementMethod, &created.ApprovedBy, &created.Remark, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return loan.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return created, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id string, industryID string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.industry_id, l.employee_id, l.application_date, l.principal, l.start_date,
			   l.end_date, l.total_installments, l.installment_per_month, l.status, l.paid_to_date,
			   l.purpose, l.disbursement_method, l.approved_by, l.remark, l.created_at, l.updated_at,
			   e.full_name as employee_name
		FROM loans l
		JOIN employees e ON l.employee_id = e.id
		WHERE l.id = $1 AND l.industry_id = $2
	`

	var found loan.Loan
	err := q.QueryRow(ctx, query, id, industryID).Scan(
		&found.ID, &found.IndustryID, &found.EmployeeID, &found.ApplicationDate, &found.Principal, &found.StartDate,
		&found.EndDate, &found.TotalInstallments, &found.InstallmentPerMonth, &found.Status, &found.PaidToDate,
		&found.Purpose, &found.DisbursementMethod, &found.ApprovedBy, &found.Remark, &found.CreatedAt, &found.UpdatedAt,
		&found.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return found, nil
}

func (r *loanRepository) GetActiveByEmployee(ctx context.Context, employeeID string, asOfMonth time.Time, industryID string) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, industry_id, employee_id, application_date, principal, start_date,
			   end_date, total_installments, installment_per_month, status, paid_to_date,
			   purpose, disbursement_method, approved_by, remark, created_at, updated_at
		FROM loans
		WHERE employee_id = $1 AND industry_id = $2
		  AND status = $3
		  AND start_date <= $4
		  AND (end_date IS NULL OR end_date >= $4)
		ORDER BY start_date, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, industryID, loan.StatusApproved, asOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get active loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		var l loan.Loan
		if err := rows.Scan(
			&l.ID, &l.IndustryID, &l.EmployeeID, &l.ApplicationDate, &l.Principal, &l.StartDate,
			&l.EndDate, &l.TotalInstallments, &l.InstallmentPerMonth, &l.Status, &l.PaidToDate,
			&l.Purpose, &l.DisbursementMethod, &l.ApprovedBy, &l.Remark, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	return loans, rows.Err()
}

func (r *loanRepository) List(ctx context.Context, filter loan.LoanFilter, industryID string) ([]loan.Loan, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM loans l
		JOIN employees e ON l.employee_id = e.id
		WHERE l.industry_id = $1
	`
	args := []interface{}{industryID}
	argIdx := 2

	if filter.EmployeeID != "" {
		baseQuery += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		baseQuery += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT l.id, l.industry_id, l.employee_id, l.application_date, l.principal, l.start_date,
			   l.end_date, l.total_installments, l.installment_per_month, l.status, l.paid_to_date,
			   l.purpose, l.disbursement_method, l.approved_by, l.remark, l.created_at, l.updated_at,
			   e.full_name as employee_name
		%s
		ORDER BY l.application_date DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		var l loan.Loan
		if err := rows.Scan(
			&l.ID, &l.IndustryID, &l.EmployeeID, &l.ApplicationDate, &l.Principal, &l.StartDate,
			&l.EndDate, &l.TotalInstallments, &l.InstallmentPerMonth, &l.Status, &l.PaidToDate,
			&l.Purpose, &l.DisbursementMethod, &l.ApprovedBy, &l.Remark, &l.CreatedAt, &l.UpdatedAt,
			&l.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	return loans, totalCount, rows.Err()
}

func (r *loanRepository) UpdateStatus(ctx context.Context, id string, industryID string, status loan.LoanStatus, approvedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET status = $3, approved_by = $4, updated_at = NOW()
		WHERE id = $1 AND industry_id = $2 AND status = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, industryID, status, approvedBy, loan.StatusPending).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.ErrLoanNotPending
		}
		return fmt.Errorf("failed to update loan status: %w", err)
	}

	return nil
}

func (r *loanRepository) UpdateLedger(ctx context.Context, l loan.Loan) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET paid_to_date = $3, status = $4, end_date = $5, updated_at = NOW()
		WHERE id = $1 AND industry_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, l.ID, l.IndustryID, l.PaidToDate, l.Status, l.EndDate).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.ErrLoanNotFound
		}
		return fmt.Errorf("failed to update loan ledger: %w", err)
	}

	return nil
}

func (r *loanRepository) CreateRepayment(ctx context.Context, entry loan.RepaymentEntry) (loan.RepaymentEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO loan_repayments (id, loan_id, payroll_record_id, amount, salary_month, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, loan_id, payroll_record_id, amount, salary_month, paid_at
	`

	var created loan.RepaymentEntry
	err := q.QueryRow(ctx, query,
		entry.ID, entry.LoanID, entry.PayrollRecordID, entry.Amount, entry.SalaryMonth, entry.PaidAt,
	).Scan(
		&created.ID, &created.LoanID, &created.PayrollRecordID, &created.Amount, &created.SalaryMonth, &created.PaidAt,
	)
	if err != nil {
		return loan.RepaymentEntry{}, fmt.Errorf("failed to create loan repayment: %w", err)
	}

	return created, nil
}

func (r *loanRepository) GetRepaymentsByLoan(ctx context.Context, loanID string, industryID string) ([]loan.RepaymentEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.loan_id, lr.payroll_record_id, lr.amount, lr.salary_month, lr.paid_at
		FROM loan_repayments lr
		JOIN loans l ON lr.loan_id = l.id
		WHERE lr.loan_id = $1 AND l.industry_id = $2
		ORDER BY lr.paid_at
	`

	return r.queryRepayments(ctx, q, query, loanID, industryID)
}

func (r *loanRepository) GetRepaymentsByPayrollRecord(ctx context.Context, payrollRecordID string, industryID string) ([]loan.RepaymentEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.loan_id, lr.payroll_record_id, lr.amount, lr.salary_month, lr.paid_at
		FROM loan_repayments lr
		JOIN loans l ON lr.loan_id = l.id
		WHERE lr.payroll_record_id = $1 AND l.industry_id = $2
		ORDER BY lr.paid_at
	`

	return r.queryRepayments(ctx, q, query, payrollRecordID, industryID)
}

func (r *loanRepository) queryRepayments(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]loan.RepaymentEntry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan repayments: %w", err)
	}
	defer rows.Close()

	var entries []loan.RepaymentEntry
	for rows.Next() {
		var e loan.RepaymentEntry
		if err := rows.Scan(&e.ID, &e.LoanID, &e.PayrollRecordID, &e.Amount, &e.SalaryMonth, &e.PaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan repayment: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
