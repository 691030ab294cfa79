package employee

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
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

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id, industryID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(e), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetByIndustryID(ctx, industryID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, mapToEmployeeResponse(e))
	}
	return result, nil
}

func mapToEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                 e.ID,
		FullName:           e.FullName,
		PhoneNumber:        e.PhoneNumber,
		Address:            e.Address,
		JoiningDate:        e.JoiningDate.Format("2006-01-02"),
		Department:         e.Department,
		Designation:        e.Designation,
		SalaryPerDay:       e.SalaryPerDay,
		PFAmount:           e.PFAmount,
		RegularExpenseRate: e.RegularExpenseRate,
		FoodExpenseRate:    e.FoodExpenseRate,
		WorkType:           e.WorkType,
		ManagerName:        e.ManagerName,
		BankAccountNumber:  e.BankAccountNumber,
	}
}
