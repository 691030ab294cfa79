package ledger

import (
	"context"

	"github.com/wagedesk/payroll-backend-go/internal/domain/advance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type AdvanceServiceImpl struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, employeeRepo employee.EmployeeRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *AdvanceServiceImpl) CreateAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, industryID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	requestedDate, _ := validator.IsValidDate(req.RequestedDate)
	month, _ := validator.IsValidMonth(req.Month)

	a := advance.Advance{
		IndustryID:    industryID,
		EmployeeID:    req.EmployeeID,
		RequestedDate: requestedDate,
		Amount:        req.Amount,
		Month:         month,
		Status:        advance.StatusPending,
		Reason:        req.Reason,
		PaymentMethod: req.PaymentMethod,
	}

	created, err := s.advanceRepo.Create(ctx, a)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapToAdvanceResponse(created), nil
}

func (s *AdvanceServiceImpl) GetAdvance(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	a, err := s.advanceRepo.GetByID(ctx, id, industryID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapToAdvanceResponse(a), nil
}

func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context, filter advance.AdvanceFilter) ([]advance.AdvanceResponse, int64, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	advances, total, err := s.advanceRepo.List(ctx, filter, industryID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		result = append(result, mapToAdvanceResponse(a))
	}
	return result, total, nil
}

func (s *AdvanceServiceImpl) UpdateAdvanceStatus(ctx context.Context, req advance.UpdateAdvanceStatusRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	industryID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	a, err := s.advanceRepo.GetByID(ctx, req.ID, industryID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if a.Status != advance.StatusPending {
		return advance.AdvanceResponse{}, advance.ErrAdvanceNotPending
	}

	if err := s.advanceRepo.UpdateStatus(ctx, req.ID, industryID, advance.AdvanceStatus(req.Status), userID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	a, err = s.advanceRepo.GetByID(ctx, req.ID, industryID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapToAdvanceResponse(a), nil
}

func mapToAdvanceResponse(a advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		RequestedDate: a.RequestedDate.Format("2006-01-02"),
		Amount:        a.Amount,
		Month:         a.Month.Format("2006-01"),
		SettledAmount: a.SettledAmount,
		Outstanding:   a.Outstanding(),
		Status:        string(a.Status),
		Reason:        a.Reason,
		PaymentMethod: a.PaymentMethod,
	}
}
