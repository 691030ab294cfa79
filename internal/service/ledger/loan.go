package ledger

import (
	"context"

	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/loan"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/validator"
)

type LoanServiceImpl struct {
	loanRepo     loan.LoanRepository
	employeeRepo employee.EmployeeRepository
}

func NewLoanService(loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository) loan.LoanService {
	return &LoanServiceImpl{
		loanRepo:     loanRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LoanServiceImpl) CreateLoan(ctx context.Context, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, industryID); err != nil {
		return loan.LoanResponse{}, err
	}

	applicationDate, _ := validator.IsValidDate(req.ApplicationDate)
	startDate, _ := validator.IsValidDate(req.StartDate)

	l := loan.Loan{
		IndustryID:          industryID,
		EmployeeID:          req.EmployeeID,
		ApplicationDate:     applicationDate,
		Principal:           req.Principal,
		StartDate:           startDate,
		TotalInstallments:   int(req.Principal.Div(req.InstallmentPerMonth).Ceil().IntPart()),
		InstallmentPerMonth: req.InstallmentPerMonth,
		Status:              loan.StatusPending,
		Purpose:             req.Purpose,
		DisbursementMethod:  req.DisbursementMethod,
		Remark:              req.Remark,
	}

	created, err := s.loanRepo.Create(ctx, l)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return mapToLoanResponse(created), nil
}

func (s *LoanServiceImpl) GetLoan(ctx context.Context, id string) (loan.LoanResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	l, err := s.loanRepo.GetByID(ctx, id, industryID)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return mapToLoanResponse(l), nil
}

func (s *LoanServiceImpl) ListLoans(ctx context.Context, filter loan.LoanFilter) ([]loan.LoanResponse, int64, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	loans, total, err := s.loanRepo.List(ctx, filter, industryID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		result = append(result, mapToLoanResponse(l))
	}
	return result, total, nil
}

func (s *LoanServiceImpl) UpdateLoanStatus(ctx context.Context, req loan.UpdateLoanStatusRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	industryID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	l, err := s.loanRepo.GetByID(ctx, req.ID, industryID)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if l.Status != loan.StatusPending {
		return loan.LoanResponse{}, loan.ErrLoanNotPending
	}

	if err := s.loanRepo.UpdateStatus(ctx, req.ID, industryID, loan.LoanStatus(req.Status), userID); err != nil {
		return loan.LoanResponse{}, err
	}

	l, err = s.loanRepo.GetByID(ctx, req.ID, industryID)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return mapToLoanResponse(l), nil
}

func (s *LoanServiceImpl) GetRepayments(ctx context.Context, loanID string) ([]loan.RepaymentEntryResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Tenant check before reading history
	if _, err := s.loanRepo.GetByID(ctx, loanID, industryID); err != nil {
		return nil, err
	}

	entries, err := s.loanRepo.GetRepaymentsByLoan(ctx, loanID, industryID)
	if err != nil {
		return nil, err
	}

	result := make([]loan.RepaymentEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, loan.RepaymentEntryResponse{
			ID:              e.ID,
			LoanID:          e.LoanID,
			PayrollRecordID: e.PayrollRecordID,
			Amount:          e.Amount,
			SalaryMonth:     e.SalaryMonth,
			PaidAt:          e.PaidAt.Format("2006-01-02"),
		})
	}
	return result, nil
}

func mapToLoanResponse(l loan.Loan) loan.LoanResponse {
	var endDate *string
	if l.EndDate != nil {
		formatted := l.EndDate.Format("2006-01-02")
		endDate = &formatted
	}

	return loan.LoanResponse{
		ID:                  l.ID,
		EmployeeID:          l.EmployeeID,
		EmployeeName:        l.EmployeeName,
		ApplicationDate:     l.ApplicationDate.Format("2006-01-02"),
		Principal:           l.Principal,
		StartDate:           l.StartDate.Format("2006-01-02"),
		EndDate:             endDate,
		ProjectedEndDate:    l.ProjectedEndDate().Format("2006-01-02"),
		TotalInstallments:   l.TotalInstallments,
		InstallmentPerMonth: l.InstallmentPerMonth,
		Status:              string(l.Status),
		PaidToDate:          l.PaidToDate,
		Outstanding:         l.Outstanding(),
		Purpose:             l.Purpose,
		DisbursementMethod:  l.DisbursementMethod,
		Remark:              l.Remark,
	}
}
