package response

import (
	"errors"
	"net/http"

	"github.com/wagedesk/payroll-backend-go/internal/domain/advance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/calendar"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/loan"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, calendar.ErrCalendarDayNotFound):
		NotFound(w, "Calendar day not found")
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance salary not found")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Bad input
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid period, expected YYYY-MM", nil)
	case errors.Is(err, payroll.ErrUnknownOverrideField):
		BadRequest(w, "Unknown override field", nil)
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// State conflicts
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Payroll record is already paid")
	case errors.Is(err, payroll.ErrCannotDeletePaidRecord):
		Conflict(w, "Paid payroll records cannot be deleted")
	case errors.Is(err, loan.ErrLoanNotPending):
		Conflict(w, "Loan is not pending approval")
	case errors.Is(err, advance.ErrAdvanceNotPending):
		Conflict(w, "Advance salary is not pending approval")
	case errors.Is(err, loan.ErrLedgerInconsistency):
		Conflict(w, "Loan deduction exceeds outstanding principal")
	case errors.Is(err, advance.ErrLedgerInconsistency):
		Conflict(w, "Advance deduction exceeds outstanding amount")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
