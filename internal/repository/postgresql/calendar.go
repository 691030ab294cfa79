package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/calendar"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
)

type calendarRepository struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) Upsert(ctx context.Context, day calendar.CalendarDay) (calendar.CalendarDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_days (industry_id, date, type, remark)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (industry_id, date) DO UPDATE SET
			type = EXCLUDED.type,
			remark = EXCLUDED.remark,
			updated_at = NOW()
		RETURNING id, industry_id, date, type, remark, created_at, updated_at
	`

	var d calendar.CalendarDay
	err := q.QueryRow(ctx, query, day.IndustryID, day.Date, day.Type, day.Remark).Scan(
		&d.ID, &d.IndustryID, &d.Date, &d.Type, &d.Remark, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return calendar.CalendarDay{}, fmt.Errorf("failed to upsert calendar day: %w", err)
	}

	return d, nil
}

func (r *calendarRepository) GetByDateRange(ctx context.Context, industryID string, from, to time.Time) ([]calendar.CalendarDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, industry_id, date, type, remark, created_at, updated_at
		FROM calendar_days
		WHERE industry_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, industryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar days: %w", err)
	}
	defer rows.Close()

	var days []calendar.CalendarDay
	for rows.Next() {
		var d calendar.CalendarDay
		if err := rows.Scan(&d.ID, &d.IndustryID, &d.Date, &d.Type, &d.Remark, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calendar day: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

func (r *calendarRepository) Delete(ctx context.Context, id string, industryID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM calendar_days
		WHERE id = $1 AND industry_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, industryID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.ErrCalendarDayNotFound
		}
		return fmt.Errorf("failed to delete calendar day: %w", err)
	}

	return nil
}
