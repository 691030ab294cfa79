package payroll

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/domain/ledger"
	"github.com/wagedesk/payroll-backend-go/internal/domain/payroll"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
	"github.com/wagedesk/payroll-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	payrollRepo   payroll.PayrollRepository
	employeeRepo  employee.EmployeeRepository
	attendanceSvc attendance.AttendanceService
	ledgerSvc     ledger.LedgerService
	db            *database.DB
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceSvc attendance.AttendanceService,
	ledgerSvc ledger.LedgerService,
	db *database.DB,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:   payrollRepo,
		employeeRepo:  employeeRepo,
		attendanceSvc: attendanceSvc,
		ledgerSvc:     ledgerSvc,
		db:            db,
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

func (s *PayrollServiceImpl) ComputeDraft(ctx context.Context, req payroll.ComputeDraftRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	period, err := payroll.ParsePeriod(req.PeriodMonth)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, industryID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	summary, err := s.attendanceSvc.Aggregate(ctx, industryID, emp.ID, period.Start(), period.End())
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	dues, err := s.ledgerSvc.DuesFor(ctx, industryID, emp.ID, period.Start())
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec := payroll.PayrollRecord{
		IndustryID:  industryID,
		EmployeeID:  emp.ID,
		PeriodMonth: period,
		Status:      payroll.StatusDraft,
	}
	applySummary(&rec, summary)
	recomputeFrom(&rec, stagePay, computeInput{rate: emp.Rate(), dues: dues}, pinnedFields{})

	saved, err := s.payrollRepo.Upsert(ctx, rec)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(saved), nil
}

func (s *PayrollServiceImpl) OverrideDraft(ctx context.Context, req payroll.OverrideDraftRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, req.ID, industryID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if rec.Status == payroll.StatusPaid {
		return payroll.PayrollRecordResponse{}, payroll.ErrRecordAlreadyPaid
	}

	emp, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID, industryID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	dues, err := s.ledgerSvc.DuesFor(ctx, industryID, rec.EmployeeID, rec.PeriodMonth.Start())
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	// Apply the corrections, then re-run only the stages downstream of
	// the earliest corrected figure. Upstream facts stay as entered.
	from := stageNet + 1
	var pin pinnedFields

	if req.DaysPresent != nil {
		rec.DaysPresent = *req.DaysPresent
		from = min(from, stagePay)
	}
	if req.HoursWorked != nil {
		rec.HoursWorked = *req.HoursWorked
		from = min(from, stagePay)
	}
	if req.OvertimeHours != nil {
		rec.OvertimeHours = *req.OvertimeHours
		from = min(from, stagePay)
	}
	if req.BasicPay != nil {
		rec.BasicPay = *req.BasicPay
		pin.basicPay = true
		from = min(from, stageGross)
	}
	if req.OtherAllowance != nil {
		rec.OtherAllowance = *req.OtherAllowance
		pin.otherAllowance = true
		from = min(from, stageGross)
	}
	if req.FoodAllowance != nil {
		rec.FoodAllowance = *req.FoodAllowance
		pin.foodAllowance = true
		from = min(from, stageGross)
	}
	if req.LoanDeduction != nil {
		rec.Deductions.Loan = *req.LoanDeduction
		pin.loanDeduction = true
		from = min(from, stageDeductions)
	}
	if req.AdvanceDeduction != nil {
		rec.Deductions.Advance = *req.AdvanceDeduction
		pin.advanceDeduction = true
		from = min(from, stageDeductions)
	}
	if req.PFDeduction != nil {
		rec.Deductions.ProvidentFund = *req.PFDeduction
		pin.pfDeduction = true
		from = min(from, stageDeductions)
	}

	if from <= stageNet {
		recomputeFrom(&rec, from, computeInput{rate: emp.Rate(), dues: dues}, pin)
	}

	if req.Status != nil {
		rec.Status = payroll.PayrollStatus(*req.Status)
	}
	if req.PaymentMethod != nil {
		rec.PaymentMethod = req.PaymentMethod
	}
	if req.Remark != nil {
		rec.Remark = req.Remark
	}

	if err := s.payrollRepo.Update(ctx, rec); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(rec), nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, id, industryID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(rec), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecordResponse, int64, error) {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	records, total, err := s.payrollRepo.List(ctx, filter, industryID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, mapToRecordResponse(rec))
	}
	return result, total, nil
}

func (s *PayrollServiceImpl) Finalize(ctx context.Context, id string) (payroll.FinalizeResponse, error) {
	industryID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.FinalizeResponse{}, err
	}

	outcome := payroll.OutcomeFinalized

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Row lock plus status guard: a concurrent finalize of the same
		// record blocks here and then sees paid
		rec, err := s.payrollRepo.GetForUpdate(txCtx, id, industryID)
		if err != nil {
			return err
		}
		if rec.Status == payroll.StatusPaid {
			outcome = payroll.OutcomeAlreadyFinalized
			return nil
		}

		if err := s.ledgerSvc.ApplyDeductions(
			txCtx,
			industryID,
			rec.EmployeeID,
			rec.ID,
			rec.PeriodMonth.Start(),
			rec.Deductions.Loan,
			rec.Deductions.Advance,
		); err != nil {
			return err
		}

		return s.payrollRepo.MarkPaid(txCtx, id, industryID, userID)
	})
	if err != nil {
		return payroll.FinalizeResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, id, industryID)
	if err != nil {
		return payroll.FinalizeResponse{}, err
	}

	return payroll.FinalizeResponse{
		Outcome: outcome,
		Record:  mapToRecordResponse(rec),
	}, nil
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	industryID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	rec, err := s.payrollRepo.GetByID(ctx, id, industryID)
	if err != nil {
		return err
	}
	if rec.Status == payroll.StatusPaid {
		return payroll.ErrCannotDeletePaidRecord
	}

	return s.payrollRepo.Delete(ctx, id, industryID)
}

func mapToRecordResponse(rec payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paidAt *string
	if rec.PaidAt != nil {
		formatted := rec.PaidAt.Format("2006-01-02")
		paidAt = &formatted
	}

	return payroll.PayrollRecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		EmployeeName:     rec.EmployeeName,
		PeriodMonth:      rec.PeriodMonth.String(),
		WorkingDays:      rec.WorkingDays,
		DaysPresent:      rec.DaysPresent,
		DaysAbsent:       rec.DaysAbsent,
		HoursWorked:      rec.HoursWorked,
		OvertimeHours:    rec.OvertimeHours,
		BasicPay:         rec.BasicPay,
		OtherAllowance:   rec.OtherAllowance,
		FoodAllowance:    rec.FoodAllowance,
		GrossPay:         rec.GrossPay,
		LoanDeduction:    rec.Deductions.Loan,
		AdvanceDeduction: rec.Deductions.Advance,
		PFDeduction:      rec.Deductions.ProvidentFund,
		TotalDeduction:   rec.TotalDeduction,
		NetPay:           rec.NetPay,
		Status:           string(rec.Status),
		PaymentMethod:    rec.PaymentMethod,
		Remark:           rec.Remark,
		PaidAt:           paidAt,
	}
}
