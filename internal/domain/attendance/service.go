package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance spans.
type AttendanceService interface {
	// CreateAttendance records a new span for an employee
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single span by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves spans with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)

	// UpdateAttendance updates a span - for fixing wrong data
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a span
	DeleteAttendance(ctx context.Context, id string) error

	// Aggregate computes presence, absence and worked hours for an
	// employee over [periodStart, periodEnd]. Spans are clipped to the
	// period; absence is derived against the tenant calendar. Missing
	// data yields a zero summary, never an error.
	Aggregate(ctx context.Context, industryID, employeeID string, periodStart, periodEnd time.Time) (Summary, error)

	// GetMonthlySummary aggregates one employee's attendance over a
	// salary month ("YYYY-MM"), for review before payroll runs
	GetMonthlySummary(ctx context.Context, employeeID, periodMonth string) (SummaryResponse, error)
}
