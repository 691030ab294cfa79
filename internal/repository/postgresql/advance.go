package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/advance"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_salaries (
			industry_id, employee_id, requested_date, amount, month,
			status, reason, payment_method
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, industry_id, employee_id, requested_date, amount, month,
			settled_amount, status, reason, payment_method, approved_by,
			created_at, updated_at
	`

	var created advance.Advance
	err := q.QueryRow(ctx, query,
		a.IndustryID, a.EmployeeID, a.RequestedDate, a.Amount, a.Month,
		a.Status, a.Reason, a.PaymentMethod,
	).Scan(
		&created.ID, &created.IndustryID, &created.EmployeeID, &created.RequestedDate, &created.Amount, &created.Month,
		&created.SettledAmount, &created.Status, &created.Reason, &created.PaymentMethod, &created.ApprovedBy,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance salary: %w", err)
	}

	return created, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string, industryID string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.industry_id, a.employee_id, a.requested_date, a.amount, a.month,
			   a.settled_amount, a.status, a.reason, a.payment_method, a.approved_by,
			   a.created_at, a.updated_at, e.full_name as employee_name
		FROM advance_salaries a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.id = $1 AND a.industry_id = $2
	`

	var found advance.Advance
	err := q.QueryRow(ctx, query, id, industryID).Scan(
		&found.ID, &found.IndustryID, &found.EmployeeID, &found.RequestedDate, &found.Amount, &found.Month,
		&found.SettledAmount, &found.Status, &found.Reason, &found.PaymentMethod, &found.ApprovedBy,
		&found.CreatedAt, &found.UpdatedAt, &found.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance salary: %w", err)
	}

	return found, nil
}

func (r *advanceRepository) GetOutstandingByEmployee(ctx context.Context, employeeID string, asOfMonth time.Time, industryID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, industry_id, employee_id, requested_date, amount, month,
			   settled_amount, status, reason, payment_method, approved_by,
			   created_at, updated_at
		FROM advance_salaries
		WHERE employee_id = $1 AND industry_id = $2
		  AND status = $3
		  AND settled_amount < amount
		  AND month <= $4
		ORDER BY month, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, industryID, advance.StatusApproved, asOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get outstanding advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(
			&a.ID, &a.IndustryID, &a.EmployeeID, &a.RequestedDate, &a.Amount, &a.Month,
			&a.SettledAmount, &a.Status, &a.Reason, &a.PaymentMethod, &a.ApprovedBy,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance salary: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (r *advanceRepository) List(ctx context.Context, filter advance.AdvanceFilter, industryID string) ([]advance.Advance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM advance_salaries a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.industry_id = $1
	`
	args := []interface{}{industryID}
	argIdx := 2

	if filter.EmployeeID != "" {
		baseQuery += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		baseQuery += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count advance salaries: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.industry_id, a.employee_id, a.requested_date, a.amount, a.month,
			   a.settled_amount, a.status, a.reason, a.payment_method, a.approved_by,
			   a.created_at, a.updated_at, e.full_name as employee_name
		%s
		ORDER BY a.requested_date DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list advance salaries: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(
			&a.ID, &a.IndustryID, &a.EmployeeID, &a.RequestedDate, &a.Amount, &a.Month,
			&a.SettledAmount, &a.Status, &a.Reason, &a.PaymentMethod, &a.ApprovedBy,
			&a.CreatedAt, &a.UpdatedAt, &a.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan advance salary: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, totalCount, rows.Err()
}

func (r *advanceRepository) UpdateStatus(ctx context.Context, id string, industryID string, status advance.AdvanceStatus, approvedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_salaries
		SET status = $3, approved_by = $4, updated_at = NOW()
		WHERE id = $1 AND industry_id = $2 AND status = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, industryID, status, approvedBy, advance.StatusPending).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.ErrAdvanceNotPending
		}
		return fmt.Errorf("failed to update advance status: %w", err)
	}

	return nil
}

func (r *advanceRepository) UpdateLedger(ctx context.Context, a advance.Advance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_salaries
		SET settled_amount = $3, status = $4, updated_at = NOW()
		WHERE id = $1 AND industry_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, a.ID, a.IndustryID, a.SettledAmount, a.Status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.ErrAdvanceNotFound
		}
		return fmt.Errorf("failed to update advance ledger: %w", err)
	}

	return nil
}
