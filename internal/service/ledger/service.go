package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/wagedesk/payroll-backend-go/internal/domain/advance"
	"github.com/wagedesk/payroll-backend-go/internal/domain/ledger"
	"github.com/wagedesk/payroll-backend-go/internal/domain/loan"
)

type LedgerServiceImpl struct {
	loanRepo    loan.LoanRepository
	advanceRepo advance.AdvanceRepository
}

func NewLedgerService(loanRepo loan.LoanRepository, advanceRepo advance.AdvanceRepository) ledger.LedgerService {
	return &LedgerServiceImpl{
		loanRepo:    loanRepo,
		advanceRepo: advanceRepo,
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

func (s *LedgerServiceImpl) DuesFor(ctx context.Context, industryID, employeeID string, month time.Time) (ledger.Dues, error) {
	loans, err := s.loanRepo.GetActiveByEmployee(ctx, employeeID, month, industryID)
	if err != nil {
		return ledger.Dues{}, err
	}
	loanDue := decimal.Zero
	for _, l := range loans {
		loanDue = loanDue.Add(l.DueInstallment())
	}

	advances, err := s.advanceRepo.GetOutstandingByEmployee(ctx, employeeID, month, industryID)
	if err != nil {
		return ledger.Dues{}, err
	}
	advanceDue := decimal.Zero
	for _, a := range advances {
		advanceDue = advanceDue.Add(a.Outstanding())
	}

	return ledger.Dues{LoanDue: loanDue, AdvanceDue: advanceDue}, nil
}

func (s *LedgerServiceImpl) ApplyDeductions(ctx context.Context, industryID, employeeID, payrollRecordID string, month time.Time, loanAmount, advanceAmount decimal.Decimal) error {
	paidAt := time.Now().UTC()
	salaryMonth := month.Format("2006-01")

	if loanAmount.IsPositive() {
		loans, err := s.loanRepo.GetActiveByEmployee(ctx, employeeID, month, industryID)
		if err != nil {
			return err
		}
		apps, err := planLoanRepayments(loans, loanAmount, paidAt)
		if err != nil {
			return err
		}
		for _, app := range apps {
			if err := s.loanRepo.UpdateLedger(ctx, app.loan); err != nil {
				return fmt.Errorf("failed to update loan ledger: %w", err)
			}
			entry := loan.RepaymentEntry{
				LoanID:          app.loan.ID,
				PayrollRecordID: payrollRecordID,
				Amount:          app.amount,
				SalaryMonth:     salaryMonth,
				PaidAt:          paidAt,
			}
			if _, err := s.loanRepo.CreateRepayment(ctx, entry); err != nil {
				return fmt.Errorf("failed to record loan repayment: %w", err)
			}
		}
	}

	if advanceAmount.IsPositive() {
		advances, err := s.advanceRepo.GetOutstandingByEmployee(ctx, employeeID, month, industryID)
		if err != nil {
			return err
		}
		settlements, err := planAdvanceSettlements(advances, advanceAmount)
		if err != nil {
			return err
		}
		for _, st := range settlements {
			if err := s.advanceRepo.UpdateLedger(ctx, st.advance); err != nil {
				return fmt.Errorf("failed to update advance ledger: %w", err)
			}
		}
	}

	return nil
}
