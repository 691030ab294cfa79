package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/calendar"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type CalendarServiceImpl struct {
	calendarRepo calendar.CalendarRepository
}

func NewCalendarService(calendarRepo calendar.CalendarRepository) calendar.CalendarService {
	return &CalendarServiceImpl{calendarRepo: calendarRepo}
}

// Helper to get industry_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (industryID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	industryID, ok := claims["industry_id"].(string)
	if !ok || industryID == "" {
		return "", "", fmt.Errorf("industry_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return industryID, userID, nil
}

func (s *CalendarServiceImpl) Classify(ctx context.Context, industryID string, date time.Time) (calendar.DayType, error) {
	day := truncateToDay(date)
	entries, err := s.calendarRepo.GetByDateRange(ctx, industryID, day, day)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		// No explicit entry: the date counts as a working day
		return calendar.DayTypeWorkingDay, nil
	}
	return entries[0].Type, nil
}

func (s *CalendarServiceImpl) CountWorkingDays(ctx context.Context, industryID string, start, end time.Time) (int, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0, nil
	}

	entries, err := s.calendarRepo.GetByDateRange(ctx, industryID, start, end)
	if err != nil {
		return 0, err
	}
	classified := make(map[string]calendar.DayType, len(entries))
	for _, e := range entries {
		classified[e.Date.Format("2006-01-02")] = e.Type
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dayType, ok := classified[d.Format("2006-01-02")]
		if !ok || dayType == calendar.DayTypeWorkingDay {
			count++
		}
	}
	return count, nil
}

func (s *CalendarServiceImpl) UpsertDay(ctx context.Context, req calendar.UpsertCalendarDayRequest) (calendar.CalendarDayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.CalendarDayResponse{}, err
	}

	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return calendar.CalendarDayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	day := calendar.CalendarDay{
		IndustryID: industryID,
		Date:       date,
		Type:       calendar.DayType(req.Type),
		Remark:     req.Remark,
	}

	saved, err := s.calendarRepo.Upsert(ctx, day)
	if err != nil {
		return calendar.CalendarDayResponse{}, err
	}

	return mapToDayResponse(saved), nil
}

func (s *CalendarServiceImpl) ListDays(ctx context.Context, filter calendar.ListCalendarFilter) ([]calendar.CalendarDayResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	from, ok := validator.IsValidDate(filter.StartDate)
	if !ok {
		from = time.Now().UTC().AddDate(0, -1, 0)
	}
	to, ok := validator.IsValidDate(filter.EndDate)
	if !ok {
		to = time.Now().UTC().AddDate(0, 1, 0)
	}

	entries, err := s.calendarRepo.GetByDateRange(ctx, industryID, truncateToDay(from), truncateToDay(to))
	if err != nil {
		return nil, err
	}

	result := make([]calendar.CalendarDayResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapToDayResponse(e))
	}
	return result, nil
}

func (s *CalendarServiceImpl) DeleteDay(ctx context.Context, id string) error {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.calendarRepo.Delete(ctx, id, industryID)
}

func mapToDayResponse(d calendar.CalendarDay) calendar.CalendarDayResponse {
	return calendar.CalendarDayResponse{
		ID:     d.ID,
		Date:   d.Date.Format("2006-01-02"),
		Type:   string(d.Type),
		Remark: d.Remark,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
