package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/calendar"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func span(typ attendance.AttendanceType, start, end string) attendance.Attendance {
	return attendance.Attendance{
		Type:           typ,
		StartDate:      day(start),
		EndDate:        day(end),
		ShortfallHours: decimal.Zero,
		ExtraHours:     decimal.Zero,
	}
}

func TestAggregateSpansFullDayWithNetting(t *testing.T) {
	// Five full days, shortfall 2 against extra 3: the offset leaves one
	// extra hour, so 40 base hours become 41 worked with 1h overtime
	rec := span(attendance.TypeFullDay, "2025-06-01", "2025-06-05")
	rec.ShortfallHours = dec("2")
	rec.ExtraHours = dec("3")

	present, worked, overtime := aggregateSpans([]attendance.Attendance{rec}, day("2025-06-01"), day("2025-06-30"))

	assert.True(t, present.Equal(dec("5")), "daysPresent = %s", present)
	assert.True(t, worked.Equal(dec("41")), "hoursWorked = %s", worked)
	assert.True(t, overtime.Equal(dec("1")), "overtimeHours = %s", overtime)
}

func TestAggregateSpansClipsToPeriod(t *testing.T) {
	// Span starts in May; only the June days may count
	rec := span(attendance.TypeFullDay, "2025-05-28", "2025-06-03")

	present, worked, _ := aggregateSpans([]attendance.Attendance{rec}, day("2025-06-01"), day("2025-06-30"))

	assert.True(t, present.Equal(dec("3")), "daysPresent = %s", present)
	assert.True(t, worked.Equal(dec("24")), "hoursWorked = %s", worked)
}

func TestAggregateSpansOutsidePeriod(t *testing.T) {
	rec := span(attendance.TypeFullDay, "2025-05-01", "2025-05-31")

	present, worked, overtime := aggregateSpans([]attendance.Attendance{rec}, day("2025-06-01"), day("2025-06-30"))

	assert.True(t, present.IsZero())
	assert.True(t, worked.IsZero())
	assert.True(t, overtime.IsZero())
}

func TestAggregateSpansHalfDay(t *testing.T) {
	rec := span(attendance.TypeHalfDay, "2025-06-02", "2025-06-05")

	present, worked, _ := aggregateSpans([]attendance.Attendance{rec}, day("2025-06-01"), day("2025-06-30"))

	assert.True(t, present.Equal(dec("2")), "daysPresent = %s", present)
	assert.True(t, worked.Equal(dec("16")), "hoursWorked = %s", worked)
}

func TestAggregateSpansCustomHours(t *testing.T) {
	perDay := dec("6.5")
	rec := span(attendance.TypeCustomHours, "2025-06-02", "2025-06-03")
	rec.CustomHoursPerDay = &perDay

	present, worked, _ := aggregateSpans([]attendance.Attendance{rec}, day("2025-06-01"), day("2025-06-30"))

	assert.True(t, present.Equal(dec("2")))
	assert.True(t, worked.Equal(dec("13")), "hoursWorked = %s", worked)

	// Without an explicit per-day figure, custom hours default to 8
	rec.CustomHoursPerDay = nil
	_, worked, _ = aggregateSpans([]attendance.Attendance{rec}, day("2025-06-01"), day("2025-06-30"))
	assert.True(t, worked.Equal(dec("16")), "hoursWorked = %s", worked)
}

func TestAggregateSpansAbsentContributesNothing(t *testing.T) {
	rec := span(attendance.TypeAbsent, "2025-06-02", "2025-06-06")
	rec.ExtraHours = dec("5") // ignored on absent spans

	present, worked, overtime := aggregateSpans([]attendance.Attendance{rec}, day("2025-06-01"), day("2025-06-30"))

	assert.True(t, present.IsZero())
	assert.True(t, worked.IsZero())
	assert.True(t, overtime.IsZero())
}

func TestAggregateSpansShortfallFloorsAtZero(t *testing.T) {
	// Shortfall larger than the base hours cannot drive them negative
	rec := span(attendance.TypeHalfDay, "2025-06-02", "2025-06-02")
	rec.ShortfallHours = dec("10")

	_, worked, _ := aggregateSpans([]attendance.Attendance{rec}, day("2025-06-01"), day("2025-06-30"))

	assert.True(t, worked.IsZero(), "hoursWorked = %s", worked)
}

func TestAggregateSpansOverlapsAreSummed(t *testing.T) {
	a := span(attendance.TypeFullDay, "2025-06-02", "2025-06-02")
	b := span(attendance.TypeFullDay, "2025-06-02", "2025-06-02")

	present, worked, _ := aggregateSpans([]attendance.Attendance{a, b}, day("2025-06-01"), day("2025-06-30"))

	assert.True(t, present.Equal(dec("2")), "daysPresent = %s", present)
	assert.True(t, worked.Equal(dec("16")), "hoursWorked = %s", worked)
}

// ---- Aggregate (service level, residual absence) ----

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id, industryID string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetOverlapping(ctx context.Context, employeeID string, from, to time.Time, industryID string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.StartDate.After(to) && !r.EndDate.Before(from) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter, industryID string) ([]attendance.Attendance, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) Delete(ctx context.Context, id, industryID string) error  { return nil }

type fakeCalendarService struct {
	workingDays int
}

func (f *fakeCalendarService) Classify(ctx context.Context, industryID string, date time.Time) (calendar.DayType, error) {
	return calendar.DayTypeWorkingDay, nil
}

func (f *fakeCalendarService) CountWorkingDays(ctx context.Context, industryID string, start, end time.Time) (int, error) {
	return f.workingDays, nil
}

func (f *fakeCalendarService) UpsertDay(ctx context.Context, req calendar.UpsertCalendarDayRequest) (calendar.CalendarDayResponse, error) {
	return calendar.CalendarDayResponse{}, nil
}

func (f *fakeCalendarService) ListDays(ctx context.Context, filter calendar.ListCalendarFilter) ([]calendar.CalendarDayResponse, error) {
	return nil, nil
}

func (f *fakeCalendarService) DeleteDay(ctx context.Context, id string) error { return nil }

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id, industryID string) (employee.Employee, error) {
	return employee.Employee{ID: id, IndustryID: industryID}, nil
}

func (f *fakeEmployeeRepo) GetByIndustryID(ctx context.Context, industryID string) ([]employee.Employee, error) {
	return nil, nil
}

func TestAggregateDerivesResidualAbsence(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		func() attendance.Attendance {
			r := span(attendance.TypeFullDay, "2025-06-02", "2025-06-06")
			r.EmployeeID = "emp-1"
			return r
		}(),
	}}
	svc := NewAttendanceService(repo, &fakeEmployeeRepo{}, &fakeCalendarService{workingDays: 21})

	summary, err := svc.Aggregate(context.Background(), "ind-1", "emp-1", day("2025-06-01"), day("2025-06-30"))
	require.NoError(t, err)

	assert.Equal(t, 21, summary.WorkingDays)
	assert.True(t, summary.DaysPresent.Equal(dec("5")))
	assert.True(t, summary.DaysAbsent.Equal(dec("16")), "daysAbsent = %s", summary.DaysAbsent)
	assert.True(t, summary.HoursWorked.Equal(dec("40")))
}

func TestAggregateNoRecords(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeCalendarService{workingDays: 22})

	summary, err := svc.Aggregate(context.Background(), "ind-1", "emp-1", day("2025-06-01"), day("2025-06-30"))
	require.NoError(t, err)

	assert.True(t, summary.DaysPresent.IsZero())
	assert.True(t, summary.DaysAbsent.Equal(dec("22")))
	assert.True(t, summary.HoursWorked.IsZero())
	assert.True(t, summary.OvertimeHours.IsZero())
}

func TestAggregateAbsenceFloorsAtZero(t *testing.T) {
	// Presence above the working-day count (double-entered spans) must not
	// produce negative absence
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		func() attendance.Attendance {
			r := span(attendance.TypeFullDay, "2025-06-01", "2025-06-30")
			r.EmployeeID = "emp-1"
			return r
		}(),
	}}
	svc := NewAttendanceService(repo, &fakeEmployeeRepo{}, &fakeCalendarService{workingDays: 20})

	summary, err := svc.Aggregate(context.Background(), "ind-1", "emp-1", day("2025-06-01"), day("2025-06-30"))
	require.NoError(t, err)

	assert.True(t, summary.DaysAbsent.IsZero(), "daysAbsent = %s", summary.DaysAbsent)
}
