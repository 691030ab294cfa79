package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			industry_id, employee_id, start_date, end_date, type,
			shortfall_hours, extra_hours, custom_hours_per_day, remark, approved_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, industry_id, employee_id, start_date, end_date, type,
			shortfall_hours, extra_hours, custom_hours_per_day, remark, approved_by,
			created_at, updated_at
	`

	var rec attendance.Attendance
	err := q.QueryRow(ctx, query,
		a.IndustryID, a.EmployeeID, a.StartDate, a.EndDate, a.Type,
		a.ShortfallHours, a.ExtraHours, a.CustomHoursPerDay, a.Remark, a.ApprovedBy,
	).Scan(
		&rec.ID, &rec.IndustryID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.Type,
		&rec.ShortfallHours, &rec.ExtraHours, &rec.CustomHoursPerDay, &rec.Remark, &rec.ApprovedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string, industryID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.industry_id, ar.employee_id, ar.start_date, ar.end_date, ar.type,
			   ar.shortfall_hours, ar.extra_hours, ar.custom_hours_per_day, ar.remark, ar.approved_by,
			   ar.created_at, ar.updated_at, e.full_name as employee_name
		FROM attendance_records ar
		JOIN employees e ON ar.employee_id = e.id
		WHERE ar.id = $1 AND ar.industry_id = $2
	`

	var rec attendance.Attendance
	err := q.QueryRow(ctx, query, id, industryID).Scan(
		&rec.ID, &rec.IndustryID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.Type,
		&rec.ShortfallHours, &rec.ExtraHours, &rec.CustomHoursPerDay, &rec.Remark, &rec.ApprovedBy,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) GetOverlapping(ctx context.Context, employeeID string, from, to time.Time, industryID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, industry_id, employee_id, start_date, end_date, type,
			   shortfall_hours, extra_hours, custom_hours_per_day, remark, approved_by,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND industry_id = $2
		  AND start_date <= $3 AND end_date >= $4
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, industryID, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get overlapping attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		if err := rows.Scan(
			&rec.ID, &rec.IndustryID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.Type,
			&rec.ShortfallHours, &rec.ExtraHours, &rec.CustomHoursPerDay, &rec.Remark, &rec.ApprovedBy,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, industryID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM attendance_records ar
		JOIN employees e ON ar.employee_id = e.id
		WHERE ar.industry_id = $1
	`
	args := []interface{}{industryID}
	argIdx := 2

	if filter.EmployeeID != "" {
		baseQuery += fmt.Sprintf(" AND ar.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if start, ok := validator.IsValidDate(filter.StartDate); ok {
		baseQuery += fmt.Sprintf(" AND ar.end_date >= $%d", argIdx)
		args = append(args, start)
		argIdx++
	}
	if end, ok := validator.IsValidDate(filter.EndDate); ok {
		baseQuery += fmt.Sprintf(" AND ar.start_date <= $%d", argIdx)
		args = append(args, end)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT ar.id, ar.industry_id, ar.employee_id, ar.start_date, ar.end_date, ar.type,
			   ar.shortfall_hours, ar.extra_hours, ar.custom_hours_per_day, ar.remark, ar.approved_by,
			   ar.created_at, ar.updated_at, e.full_name as employee_name
		%s
		ORDER BY ar.start_date DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		if err := rows.Scan(
			&rec.ID, &rec.IndustryID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.Type,
			&rec.ShortfallHours, &rec.ExtraHours, &rec.CustomHoursPerDay, &rec.Remark, &rec.ApprovedBy,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET start_date = $3, end_date = $4, type = $5, shortfall_hours = $6,
			extra_hours = $7, custom_hours_per_day = $8, remark = $9, updated_at = NOW()
		WHERE id = $1 AND industry_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		a.ID, a.IndustryID, a.StartDate, a.EndDate, a.Type,
		a.ShortfallHours, a.ExtraHours, a.CustomHoursPerDay, a.Remark,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string, industryID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM attendance_records
		WHERE id = $1 AND industry_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, industryID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}
