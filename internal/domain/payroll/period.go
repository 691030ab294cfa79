package payroll

import (
	"fmt"
	"time"
)

// Period is the calendar month a payroll record covers.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses "YYYY-MM". Anything else is ErrInvalidPeriod.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start is the first day of the month (UTC midnight).
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month (UTC midnight).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}
