package employee

import "context"

// EmployeeService exposes read access to worker profiles. Profiles are
// provisioned in the back-office app, so there are no write operations.
type EmployeeService interface {
	// GetEmployee retrieves a single profile
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees retrieves all profiles of the tenant
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
}
