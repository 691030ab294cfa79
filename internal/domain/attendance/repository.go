package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance spans.
// All methods include industryID to prevent cross-tenant data access.
type AttendanceRepository interface {
	// Create creates a new attendance span
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves an attendance span with tenant isolation
	GetByID(ctx context.Context, id string, industryID string) (Attendance, error)

	// GetOverlapping retrieves all spans of an employee overlapping
	// [from, to], ordered by start date
	GetOverlapping(ctx context.Context, employeeID string, from, to time.Time, industryID string) ([]Attendance, error)

	// List retrieves attendance spans with filters and pagination
	List(ctx context.Context, filter AttendanceFilter, industryID string) ([]Attendance, int64, error)

	// Update updates an existing attendance span
	Update(ctx context.Context, attendance Attendance) error

	// Delete removes an attendance span
	Delete(ctx context.Context, id string, industryID string) error
}
