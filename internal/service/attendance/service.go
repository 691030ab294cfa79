package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/calendar"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	calendarSvc    calendar.CalendarService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	calendarSvc calendar.CalendarService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		calendarSvc:    calendarSvc,
	}
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

func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	industryID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, industryID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	rec := attendance.Attendance{
		IndustryID:        industryID,
		EmployeeID:        req.EmployeeID,
		StartDate:         startDate,
		EndDate:           endDate,
		Type:              attendance.AttendanceType(req.Type),
		ShortfallHours:    valueOrZero(req.ShortfallHours),
		ExtraHours:        valueOrZero(req.ExtraHours),
		CustomHoursPerDay: req.CustomHoursPerDay,
		Remark:            req.Remark,
	}
	if userID != "" {
		rec.ApprovedBy = &userID
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(created), nil
}

func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, id, industryID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(rec), nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter, industryID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, mapToAttendanceResponse(rec))
	}
	return result, total, nil
}

func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, req.ID, industryID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.StartDate != nil {
		start, ok := validator.IsValidDate(*req.StartDate)
		if !ok {
			return attendance.AttendanceResponse{}, validator.ValidationErrors{{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"}}
		}
		rec.StartDate = start
	}
	if req.EndDate != nil {
		end, ok := validator.IsValidDate(*req.EndDate)
		if !ok {
			return attendance.AttendanceResponse{}, validator.ValidationErrors{{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"}}
		}
		rec.EndDate = end
	}
	if rec.EndDate.Before(rec.StartDate) {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidDateRange
	}
	if req.Type != nil {
		rec.Type = attendance.AttendanceType(*req.Type)
	}
	if req.ShortfallHours != nil {
		rec.ShortfallHours = *req.ShortfallHours
	}
	if req.ExtraHours != nil {
		rec.ExtraHours = *req.ExtraHours
	}
	if req.CustomHoursPerDay != nil {
		rec.CustomHoursPerDay = req.CustomHoursPerDay
	}
	if req.Remark != nil {
		rec.Remark = req.Remark
	}

	if err := s.attendanceRepo.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(rec), nil
}

func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.attendanceRepo.Delete(ctx, id, industryID)
}

func (s *AttendanceServiceImpl) Aggregate(ctx context.Context, industryID, employeeID string, periodStart, periodEnd time.Time) (attendance.Summary, error) {
	workingDays, err := s.calendarSvc.CountWorkingDays(ctx, industryID, periodStart, periodEnd)
	if err != nil {
		return attendance.Summary{}, err
	}

	records, err := s.attendanceRepo.GetOverlapping(ctx, employeeID, periodStart, periodEnd, industryID)
	if err != nil {
		return attendance.Summary{}, err
	}

	daysPresent, hoursWorked, overtimeHours := aggregateSpans(records, periodStart, periodEnd)

	// Absence is derived against the official calendar, not counted from
	// absent-typed records
	daysAbsent := decimal.Max(decimal.Zero, decimal.NewFromInt(int64(workingDays)).Sub(daysPresent))

	return attendance.Summary{
		WorkingDays:   workingDays,
		DaysPresent:   daysPresent,
		DaysAbsent:    daysAbsent,
		HoursWorked:   hoursWorked,
		OvertimeHours: overtimeHours,
	}, nil
}

func (s *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, employeeID, periodMonth string) (attendance.SummaryResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	month, ok := validator.IsValidMonth(periodMonth)
	if !ok {
		return attendance.SummaryResponse{}, validator.ValidationErrors{{Field: "period_month", Message: "must be a valid month (YYYY-MM)"}}
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID, industryID); err != nil {
		return attendance.SummaryResponse{}, err
	}

	summary, err := s.Aggregate(ctx, industryID, employeeID, month, month.AddDate(0, 1, -1))
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{
		EmployeeID:    employeeID,
		PeriodMonth:   periodMonth,
		WorkingDays:   summary.WorkingDays,
		DaysPresent:   summary.DaysPresent,
		DaysAbsent:    summary.DaysAbsent,
		HoursWorked:   summary.HoursWorked,
		OvertimeHours: summary.OvertimeHours,
	}, nil
}

func mapToAttendanceResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		EmployeeName:      rec.EmployeeName,
		StartDate:         rec.StartDate.Format("2006-01-02"),
		EndDate:           rec.EndDate.Format("2006-01-02"),
		DaysCount:         rec.DaysCount(),
		Type:              string(rec.Type),
		ShortfallHours:    rec.ShortfallHours,
		ExtraHours:        rec.ExtraHours,
		CustomHoursPerDay: rec.CustomHoursPerDay,
		Remark:            rec.Remark,
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
