package payroll

import "errors"

var (
	ErrPayrollRecordNotFound  = errors.New("payroll record not found")
	ErrInvalidPeriod          = errors.New("invalid payroll period")
	ErrRecordAlreadyPaid      = errors.New("payroll record already paid, cannot modify")
	ErrCannotDeletePaidRecord = errors.New("cannot delete paid payroll record")
	ErrUnknownOverrideField   = errors.New("unknown override field")
)
