package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
)

var (
	fullDayHours = decimal.NewFromInt(8)
	halfDayHours = decimal.NewFromInt(4)
	half         = decimal.NewFromFloat(0.5)
)

// aggregateSpans folds attendance spans into presence, worked hours and
// overtime. Each span is clipped to [periodStart, periodEnd] first, so
// only the overlapping days contribute. Overlapping spans are summed
// as-is; deduplication is a data-entry concern.
func aggregateSpans(records []attendance.Attendance, periodStart, periodEnd time.Time) (daysPresent, hoursWorked, overtimeHours decimal.Decimal) {
	daysPresent = decimal.Zero
	hoursWorked = decimal.Zero
	overtimeHours = decimal.Zero

	for _, rec := range records {
		clipStart := rec.StartDate
		if clipStart.Before(periodStart) {
			clipStart = periodStart
		}
		clipEnd := rec.EndDate
		if clipEnd.After(periodEnd) {
			clipEnd = periodEnd
		}
		if clipEnd.Before(clipStart) {
			continue
		}
		spanLength := decimal.NewFromInt(int64(clipEnd.Sub(clipStart).Hours()/24) + 1)

		var baseHours decimal.Decimal
		switch rec.Type {
		case attendance.TypeFullDay:
			daysPresent = daysPresent.Add(spanLength)
			baseHours = fullDayHours.Mul(spanLength)
		case attendance.TypeHalfDay:
			daysPresent = daysPresent.Add(half.Mul(spanLength))
			baseHours = halfDayHours.Mul(spanLength)
		case attendance.TypeCustomHours:
			daysPresent = daysPresent.Add(spanLength)
			perDay := fullDayHours
			if rec.CustomHoursPerDay != nil {
				perDay = *rec.CustomHoursPerDay
			}
			baseHours = perDay.Mul(spanLength)
		case attendance.TypeAbsent:
			continue
		default:
			continue
		}

		// Shortfall and extra offset each other before either is booked
		shortfall := rec.ShortfallHours
		extra := rec.ExtraHours
		offset := decimal.Min(shortfall, extra)
		shortfall = shortfall.Sub(offset)
		extra = extra.Sub(offset)

		worked := decimal.Max(decimal.Zero, baseHours.Sub(shortfall)).Add(extra)
		hoursWorked = hoursWorked.Add(worked)
		overtimeHours = overtimeHours.Add(extra)
	}

	return daysPresent, hoursWorked, overtimeHours
}
