package employee

import "context"

// EmployeeRepository defines read access to worker profiles.
// All methods include industryID to prevent cross-tenant data access.
type EmployeeRepository interface {
	// GetByID retrieves an employee with tenant isolation
	GetByID(ctx context.Context, id string, industryID string) (Employee, error)

	// GetByIndustryID retrieves all employees of a tenant
	GetByIndustryID(ctx context.Context, industryID string) ([]Employee, error)
}
