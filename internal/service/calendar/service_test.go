package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagedesk/payroll-backend-go/internal/domain/calendar"
)

type fakeCalendarRepo struct {
	entries []calendar.CalendarDay
}

func (f *fakeCalendarRepo) Upsert(ctx context.Context, day calendar.CalendarDay) (calendar.CalendarDay, error) {
	f.entries = append(f.entries, day)
	return day, nil
}

func (f *fakeCalendarRepo) GetByDateRange(ctx context.Context, industryID string, from, to time.Time) ([]calendar.CalendarDay, error) {
	var result []calendar.CalendarDay
	for _, e := range f.entries {
		if e.IndustryID == industryID && !e.Date.Before(from) && !e.Date.After(to) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeCalendarRepo) Delete(ctx context.Context, id string, industryID string) error {
	return nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassifyDefaultsToWorkingDay(t *testing.T) {
	svc := NewCalendarService(&fakeCalendarRepo{})

	got, err := svc.Classify(context.Background(), "ind-1", day("2025-06-02"))
	require.NoError(t, err)
	assert.Equal(t, calendar.DayTypeWorkingDay, got)
}

func TestClassifyUsesExplicitEntry(t *testing.T) {
	repo := &fakeCalendarRepo{entries: []calendar.CalendarDay{
		{IndustryID: "ind-1", Date: day("2025-06-01"), Type: calendar.DayTypeWeekend},
		{IndustryID: "ind-1", Date: day("2025-06-02"), Type: calendar.DayTypeHoliday},
	}}
	svc := NewCalendarService(repo)

	got, err := svc.Classify(context.Background(), "ind-1", day("2025-06-02"))
	require.NoError(t, err)
	assert.Equal(t, calendar.DayTypeHoliday, got)

	// Another tenant's entry must not leak
	got, err = svc.Classify(context.Background(), "ind-2", day("2025-06-02"))
	require.NoError(t, err)
	assert.Equal(t, calendar.DayTypeWorkingDay, got)
}

func TestCountWorkingDays(t *testing.T) {
	repo := &fakeCalendarRepo{entries: []calendar.CalendarDay{
		{IndustryID: "ind-1", Date: day("2025-06-01"), Type: calendar.DayTypeWeekend},
		{IndustryID: "ind-1", Date: day("2025-06-08"), Type: calendar.DayTypeWeekend},
		{IndustryID: "ind-1", Date: day("2025-06-05"), Type: calendar.DayTypeHoliday},
		{IndustryID: "ind-1", Date: day("2025-06-09"), Type: calendar.DayTypeWorkingDay},
	}}
	svc := NewCalendarService(repo)

	// 10 days, minus two weekends and one holiday
	got, err := svc.CountWorkingDays(context.Background(), "ind-1", day("2025-06-01"), day("2025-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestCountWorkingDaysEmptyCalendar(t *testing.T) {
	svc := NewCalendarService(&fakeCalendarRepo{})

	// No entries at all: every day counts as working
	got, err := svc.CountWorkingDays(context.Background(), "ind-1", day("2025-06-01"), day("2025-06-30"))
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestCountWorkingDaysInvertedRange(t *testing.T) {
	svc := NewCalendarService(&fakeCalendarRepo{})

	got, err := svc.CountWorkingDays(context.Background(), "ind-1", day("2025-06-10"), day("2025-06-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
