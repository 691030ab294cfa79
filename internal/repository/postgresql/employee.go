package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/employee"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, industryID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, industry_id, full_name, phone_number, address, joining_date,
			   department, designation, salary_per_day, pf_amount,
			   regular_expense_rate, food_expense_rate, work_type, manager_name,
			   bank_account_number, created_at, updated_at
		FROM employees
		WHERE id = $1 AND industry_id = $2
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, industryID).Scan(
		&e.ID, &e.IndustryID, &e.FullName, &e.PhoneNumber, &e.Address, &e.JoiningDate,
		&e.Department, &e.Designation, &e.SalaryPerDay, &e.PFAmount,
		&e.RegularExpenseRate, &e.FoodExpenseRate, &e.WorkType, &e.ManagerName,
		&e.BankAccountNumber, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByIndustryID(ctx context.Context, industryID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, industry_id, full_name, phone_number, address, joining_date,
			   department, designation, salary_per_day, pf_amount,
			   regular_expense_rate, food_expense_rate, work_type, manager_name,
			   bank_account_number, created_at, updated_at
		FROM employees
		WHERE industry_id = $1
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, industryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.IndustryID, &e.FullName, &e.PhoneNumber, &e.Address, &e.JoiningDate,
			&e.Department, &e.Designation, &e.SalaryPerDay, &e.PFAmount,
			&e.RegularExpenseRate, &e.FoodExpenseRate, &e.WorkType, &e.ManagerName,
			&e.BankAccountNumber, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}
